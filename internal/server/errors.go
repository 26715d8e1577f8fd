package server

import "errors"

// errNoServersAreCreated is returned by NewServer when neither the HTTP nor
// the gRPC address yields a server.
var errNoServersAreCreated = errors.New("no servers are created")
