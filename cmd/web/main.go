// @title           compro API
// @version         1.0
// @description     API сайта компании: контент главной страницы, портфолио и админка.
// @host            localhost:8000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import "compro_backend/internal/app"

func main() {
	app.Run()
}
