package main

import (
	"github.com/TKMAX777/synkey/windows/client"
	"github.com/TKMAX777/synkey/windows/host"
)

var (
	startClient = client.StartClient
	startServer = host.StartServer
)
