package routes

import (
	"engagement-service/controllers"

	"github.com/gorilla/mux"
)

func LikesRoutes(router *mux.Router) {
	router.HandleFunc("/engagement/v1/likeComment/{UserID}/{CommentID}", controllers.LikeComment()).Methods("POST") //notifications implemented
	router.HandleFunc("/engagement/v1/likeCount/{CommentID}", controllers.LikeCount()).Methods("GET")
}
