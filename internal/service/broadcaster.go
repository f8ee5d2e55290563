package service

// MsgCommunityUpdate carries a refreshed CommunityStats payload
const MsgCommunityUpdate = "community_update"

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	Broadcast(msgType string, payload interface{})
}
