// cmd/server/main.go
package main

import (
	"faction-api/app"
)

// @title           Faction API
// @version         1.0
// @description     REST API for game-faction management: accounts, members, leave requests and recruitment codes.

// @contact.name   API Support

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
