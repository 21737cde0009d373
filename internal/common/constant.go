package common

// EmailQueryParam is the query parameter used to look up records by email
// on the users collection (GET /users?email=...).
const EmailQueryParam = "email"

// ContentTypeJSON is the content type sent with every store request body.
const ContentTypeJSON = "application/json"
