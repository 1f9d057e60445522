package handlers

// @title Send Email API
// @version 1.0
// @description Validates an email request and delivers it through Amazon SES
// @description or simulates delivery when IS_OFFLINE is "true".

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /

// @tag.name email
// @tag.description Email delivery operations
