package api

import (
	"github.com/vytor/uci2pgn/internal/services"
)

const defaultMaxBodyBytes = 1 << 20

type Server struct {
	ConversionService services.ConversionService
	DetectOpening     bool
	MaxBodyBytes      int64
}

func (s *Server) maxBodyBytes() int64 {
	if s.MaxBodyBytes > 0 {
		return s.MaxBodyBytes
	}
	return defaultMaxBodyBytes
}
