package middleware

import (
	"tinyhttpd/internal/http/header"
	"tinyhttpd/internal/version"
)

type ServerName struct {
	name string
}

func NewServerName() *ServerName {
	return &ServerName{name: version.ServerToken()}
}

func (s *ServerName) HandleResponse(header header.ResponseHeader) error {
	header.Set("Server", s.name)
	return nil
}
