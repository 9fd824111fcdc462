package main

import (
	appfx "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
