package routes

import (
	"engagement-service/controllers"

	"github.com/gorilla/mux"
)

func CommentRoutes(router *mux.Router) {
	router.HandleFunc("/engagement/v1/addComment/{UserID}/{ContentID}", controllers.AddComment()).Methods("POST")         // implemented notifications
	router.HandleFunc("/engagement/v1/addReply/{UserID}/{ParentCommentID}", controllers.AddReply()).Methods("POST")       // implemented notifications
	router.HandleFunc("/engagement/v1/editComment/{CommentID}/{UserID}", controllers.EditComment()).Methods("PUT")
	router.HandleFunc("/engagement/v1/deleteComment/{CommentID}/{UserID}", controllers.DeleteComment()).Methods("POST")
	router.HandleFunc("/engagement/v1/getComment/{CommentID}", controllers.GetComment()).Methods("GET")
	router.HandleFunc("/engagement/v1/getComments/{ContentID}", controllers.ListComments()).Methods("GET")               // ranked, cursor-paginated
	router.HandleFunc("/engagement/v1/getAllComments/{ContentID}", controllers.GetAllComments()).Methods("GET")
	router.HandleFunc("/engagement/v1/getReplies/{CommentID}", controllers.ListReplies()).Methods("GET")                 // ranked, cursor-paginated
	router.HandleFunc("/engagement/v1/replyCount/{CommentID}", controllers.ReplyCount()).Methods("GET")
}
