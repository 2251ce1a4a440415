package api

import "errors"

// errBadRequest marks request bodies that are not valid JSON for the endpoint.
var errBadRequest = errors.New("malformed request body")
