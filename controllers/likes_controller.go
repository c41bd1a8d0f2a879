package controllers

import (
	"context"
	"net/http"
	"time"

	"engagement-service/models"
	"engagement-service/utils"

	"github.com/gorilla/mux"
)

// LikeComment toggles the caller's like on a comment. Liking notifies the
// comment's author; unliking is silent.
func LikeComment() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		vars := mux.Vars(r)
		userID := vars["UserID"]

		commentID, err := utils.ParseID(vars["CommentID"])
		if err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		comment, err := commentStore().FindByID(ctx, commentID)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}

		liked, err := likeStore().Toggle(ctx, commentID, userID)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}

		if liked && userID != comment.AuthorID {
			sendNotificationWithData(comment.AuthorID, userID, "liked your comment", comment.ContentID, models.LikeNotification, ctx)
		}
		successResponse(rw, map[string]interface{}{"liked": liked})
	}
}

func LikeCount() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		commentID, err := utils.ParseID(mux.Vars(r)["CommentID"])
		if err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		count, err := likeStore().Count(ctx, commentID)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}
		dataResponse(rw, count)
	}
}
