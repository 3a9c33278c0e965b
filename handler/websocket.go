package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"gig_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const showFeedChannel = "shows:listed"

var (
	redisClient = redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	feedClients = make(map[*websocket.Conn]bool)
	feedMu      sync.Mutex
)

// PublishShowListed đẩy show mới lên kênh Redis cho các client feed
func PublishShowListed(info model.ShowInfo) {
	payload, err := json.Marshal(info)
	if err != nil {
		log.Printf("failed to marshal show for feed: %v", err)
		return
	}
	if err := redisClient.Publish(context.Background(), showFeedChannel, payload).Err(); err != nil {
		log.Printf("failed to publish show to feed: %v", err)
	}
}

// ShowFeedWebsocket giữ kết nối và phát show mới được list
func ShowFeedWebsocket(c *websocket.Conn) {
	// Khi WS disconnect → xoá client
	defer func() {
		feedMu.Lock()
		delete(feedClients, c)
		feedMu.Unlock()
		c.Close()
	}()

	feedMu.Lock()
	feedClients[c] = true
	feedMu.Unlock()

	// Sub kênh Redis
	pubsub := redisClient.Subscribe(context.Background(), showFeedChannel)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		feedMu.Lock()
		for conn := range feedClients {
			// Nếu client lỗi → xoá
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(feedClients, conn)
			}
		}
		feedMu.Unlock()
	}
}
