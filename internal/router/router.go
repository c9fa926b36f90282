package router

import (
	"social-service/internal/events"
	"social-service/internal/group"
	"social-service/internal/post"
	"social-service/internal/social"
	"social-service/internal/storage"
	"social-service/internal/upload"
	"social-service/internal/user"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	engine        *gin.Engine
	userHandler   *user.UserHandler
	groupHandler  *group.GroupHandler
	postHandler   *post.PostHandler
	socialHandler *social.SocialHandler
	uploadHandler *upload.UploadHandler
	authMW        *AuthMiddleware
}

// NewRouter wires services and handlers over the injected storage backend.
// objectStore may be nil, in which case the upload routes are not exposed.
func NewRouter(
	store storage.Storage,
	publisher events.Publisher,
	objectStore *upload.ObjectStore,
	jwtSecret string,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Add middlewares
	engine.Use(gin.Recovery())
	engine.Use(CORS())
	engine.Use(LogAPI())

	// Initialize services
	userService := user.NewUserService(store, jwtSecret)
	groupService := group.NewGroupService(store, publisher)
	postService := post.NewPostService(store, publisher)
	socialService := social.NewSocialService(store)

	r := &Router{
		engine:        engine,
		userHandler:   user.NewUserHandler(userService),
		groupHandler:  group.NewGroupHandler(groupService),
		postHandler:   post.NewPostHandler(postService),
		socialHandler: social.NewSocialHandler(socialService),
		authMW:        NewAuthMiddleware(jwtSecret),
	}
	if objectStore != nil {
		r.uploadHandler = upload.NewUploadHandler(objectStore)
	}
	return r
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")

	// Public routes (no authentication required)
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", r.userHandler.Register)
		authRoutes.POST("/login", r.userHandler.Login)
	}

	api.GET("/groups", r.groupHandler.ListGroups)
	api.GET("/groups/:id", r.groupHandler.GetGroup)
	api.GET("/groups/:id/posts", r.groupHandler.GetGroupPosts)
	api.GET("/groups/:id/members", r.groupHandler.Members)
	api.GET("/groups/:id/chat", r.groupHandler.ChatHistory)

	api.GET("/users/:id", r.userHandler.GetUser)
	api.GET("/users/:id/posts", r.postHandler.UserPosts)
	api.GET("/users/:id/group-posts", r.postHandler.UserGroupPosts)
	api.GET("/users/:id/groups", r.groupHandler.UserGroupsOf)
	api.GET("/users/:id/friends", r.socialHandler.Friends)
	api.GET("/users/:id/followers", r.socialHandler.Followers)
	api.GET("/users/:id/following", r.socialHandler.Following)
	api.GET("/users/:id/stats", r.socialHandler.Stats)

	api.GET("/posts/:id/comments", r.postHandler.Comments)
	api.GET("/posts/:id/reactions", r.postHandler.Reactions)

	// Authenticated routes
	auth := api.Group("/")
	auth.Use(r.authMW.RequireAuth())
	{
		auth.POST("/groups", r.groupHandler.CreateGroup)
		auth.POST("/groups/:id/posts", r.postHandler.CreatePost)
		auth.POST("/groups/:id/join", r.groupHandler.Join)
		auth.POST("/groups/:id/leave", r.groupHandler.Leave)
		auth.POST("/groups/:id/members", r.groupHandler.AddMember)
		auth.DELETE("/groups/:id/members", r.groupHandler.RemoveMember)
		auth.POST("/groups/:id/chat", r.groupHandler.SendChatMessage)

		auth.PATCH("/posts/:id", r.postHandler.UpdatePost)
		auth.DELETE("/posts/:id", r.postHandler.DeletePost)
		auth.POST("/posts/:id/comments", r.postHandler.AddComment)
		auth.POST("/posts/:id/like", r.postHandler.ToggleLike)
		auth.GET("/posts/:id/liked", r.postHandler.IsLiked)
		auth.POST("/posts/:id/reactions", r.postHandler.AddReaction)
		auth.DELETE("/posts/:id/reactions", r.postHandler.RemoveReaction)

		auth.PATCH("/users/:id", r.userHandler.UpdateUser)
		auth.POST("/users/:id/friend-request", r.socialHandler.SendFriendRequest)
		auth.POST("/users/:id/accept-friend", r.socialHandler.AcceptFriendRequest)
		auth.POST("/users/:id/reject-friend", r.socialHandler.RejectFriendRequest)
		auth.GET("/friend-requests", r.socialHandler.FriendRequests)
		auth.POST("/users/:id/follow", r.socialHandler.Follow)
		auth.POST("/users/:id/unfollow", r.socialHandler.Unfollow)
		auth.GET("/users/:id/is-following", r.socialHandler.IsFollowing)

		if r.uploadHandler != nil {
			auth.POST("/upload/avatar", r.uploadHandler.Avatar)
			auth.POST("/upload/image", r.uploadHandler.Image)
			auth.POST("/upload/music", r.uploadHandler.Music)
		}
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
