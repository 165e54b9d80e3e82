package main

import (
	"makerskills-api/core/logger"
	"makerskills-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
