// @title           TechINDIA API
// @version         1.0
// @description     Backend for TechINDIA freelance marketplace (gig listings).
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /

package main

import (
	"techindia_backend/internal/app"

	_ "techindia_backend/docs"
)

func main() {
	app.Run()
}
