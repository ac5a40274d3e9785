package main

import (
	"github.com/TKMAX777/synkey/linux/client"
	"github.com/TKMAX777/synkey/linux/host"
)

var (
	startClient = client.StartClient
	startServer = host.StartServer
)
