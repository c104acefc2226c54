package routes

import (
	"github.com/gofiber/fiber/v2"

	"speaky-backend/handler"
)

type ConfigRoute struct {
	*fiber.App
	*handler.UserHandler
	*handler.SocialHandler
	*handler.ChatHandler
	*handler.UploadHandler
}

func (rc *ConfigRoute) GetRoute() {
	api := rc.App.Group("/api/v1")

	api.Post("/auth/register", rc.UserHandler.Register)
	api.Post("/auth/login", rc.UserHandler.Login)

	api.Put("/users/profile", rc.UserHandler.UpdateProfile)
	api.Put("/users/verify", rc.UserHandler.Verify)
	api.Get("/users/by-username/:username", rc.UserHandler.FindByUsername)

	api.Post("/friends", rc.SocialHandler.AddFriend)
	api.Post("/friends/accept", rc.SocialHandler.AcceptFriend)
	api.Get("/users/:userId/friends", rc.SocialHandler.ListFriends)
	api.Get("/users/:userId/blocked", rc.SocialHandler.ListBlocked)
	api.Get("/users/:userId/stats", rc.SocialHandler.Stats)
	api.Post("/blocks", rc.SocialHandler.Block)
	api.Delete("/blocks", rc.SocialHandler.Unblock)

	api.Post("/chats", rc.ChatHandler.Create)
	api.Get("/chats", rc.ChatHandler.ListChats)
	api.Get("/chats/:chatId/members", rc.ChatHandler.ListMembers)
	api.Post("/chats/members", rc.ChatHandler.AddMember)
	api.Delete("/chats/members", rc.ChatHandler.RemoveMember)

	api.Post("/upload", rc.UploadHandler.Upload)
}
