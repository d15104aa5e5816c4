package main

import "github.com/naveenraj/dairy-api/cmd"

// @title Dairy API
// @version 1.0
// @description Bearer-token authenticated CRUD API for personal diary entries.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cmd.Execute()
}
