package constants

import "time"

// Spectator feed
const (
	// SpectatorSendBuffer is the per-client frame queue; a full queue drops the client
	SpectatorSendBuffer = 256

	SpectatorWriteWait  = 10 * time.Second
	SpectatorPongWait   = 60 * time.Second
	SpectatorPingPeriod = SpectatorPongWait * 9 / 10

	// SpectatorReadLimit caps inbound messages, spectators only send control frames
	SpectatorReadLimit = 512

	SpectatorPath = "/ws"
	MetricsPath   = "/metrics"
)
