package main

// General API documentation for swaggo. Run `swag init -g cmd/suggestd/main.go` to generate docs.
//
// @title           suggestd API
// @version         1.0
// @description     HTTP API for low-latency text autocompletion suggestions.
//
// @contact.name   suggestd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
