package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"engagement-service/configs"
	"engagement-service/models"
	"engagement-service/responses"
	"engagement-service/stores"

	"go.mongodb.org/mongo-driver/mongo"
)

func commentStore() *stores.CommentStore {
	return stores.NewCommentStore(configs.PGDB)
}

func likeStore() *stores.LikeStore {
	return stores.NewLikeStore(configs.PGDB)
}

func getContentCollection() *mongo.Collection {
	return configs.GetCollection(configs.DB, "content")
}

func errorResponse(rw http.ResponseWriter, err error, code int) {
	rw.WriteHeader(code)
	response := responses.CommentResponse{Status: code, Message: "error", Data: map[string]interface{}{"data": err.Error()}}
	json.NewEncoder(rw).Encode(response)
}

func successResponse(rw http.ResponseWriter, result interface{}) {
	rw.WriteHeader(http.StatusCreated)
	response := responses.CommentResponse{Status: http.StatusCreated, Message: "success", Data: map[string]interface{}{"data": result}}
	json.NewEncoder(rw).Encode(response)
}

func dataResponse(rw http.ResponseWriter, result interface{}) {
	rw.WriteHeader(http.StatusOK)
	response := responses.CommentResponse{Status: http.StatusOK, Message: "success", Data: map[string]interface{}{"data": result}}
	json.NewEncoder(rw).Encode(response)
}

// storeErrorResponse maps store sentinels onto HTTP codes; anything else is a 500.
func storeErrorResponse(rw http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stores.ErrInvalidArgument):
		errorResponse(rw, err, http.StatusBadRequest)
	case errors.Is(err, stores.ErrNotFound):
		errorResponse(rw, err, http.StatusNotFound)
	default:
		errorResponse(rw, err, http.StatusInternalServerError)
	}
}

func sendNotificationWithData(userID, initiatorID, message, contentID string, notificationType models.NotificationType, ctx context.Context) {
	logger := configs.LogWithContext("notifications", "publish")

	notificationData := models.Notification{
		Type:        notificationType,
		UserID:      userID,
		InitiatorID: initiatorID,
		Message:     message,
		ContentID:   contentID,
		Status:      "pending",
		DateCreated: time.Now(),
		UpdatedAt:   time.Now(),
	}
	jsonData, err := json.Marshal(notificationData)
	if err != nil {
		logger.Error("Error marshaling notification data", "error", err)
		return
	}

	err = configs.GetRedisClient().Publish(ctx, configs.NOTIFICATIONCHANNEL(), jsonData).Err()
	if err != nil {
		logger.Error("Error publishing notification to Redis", "error", err)
	}
}

// notifyOnComment handles the difference between a direct comment on content
// vs a reply to another comment.
func notifyOnComment(
	ctx context.Context,
	isReply bool,
	userID, ownerUserID, contentID, commentText string,
) {
	if userID == ownerUserID {
		// No notification for engaging with your own content
		return
	}
	if !isReply {
		// Notify content owner
		sendNotificationWithData(
			ownerUserID,
			userID,
			"commented in your post: "+commentText,
			contentID,
			models.CommentNotification,
			ctx,
		)
	} else {
		// A reply => we notify the owner of the original comment
		sendNotificationWithData(
			ownerUserID,
			userID,
			"replied to your comment: "+commentText,
			contentID,
			models.ReplyNotification,
			ctx,
		)
	}
}
