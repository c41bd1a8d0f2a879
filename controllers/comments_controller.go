package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"engagement-service/configs"
	"engagement-service/models"
	"engagement-service/responses"
	"engagement-service/stores"
	"engagement-service/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func AddComment() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		vars := mux.Vars(r)
		userID := vars["UserID"]
		contentID := vars["ContentID"]

		var input models.CommentInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			errorResponse(rw, fmt.Errorf("invalid JSON body: %v", err), http.StatusBadRequest)
			return
		}

		commentTxtDecoded, err := url.QueryUnescape(input.Comment)
		if err != nil {
			errorResponse(rw, fmt.Errorf("failed to unescape comment text: %v", err), http.StatusBadRequest)
			return
		}

		comment, err := commentStore().Create(ctx, contentID, userID, commentTxtDecoded, nil)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}

		notifyContentOwner(ctx, userID, contentID, comment.Body)
		successResponse(rw, comment)
	}
}

func AddReply() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		vars := mux.Vars(r)
		userID := vars["UserID"]

		parentID, err := utils.ParseID(vars["ParentCommentID"])
		if err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		var input models.CommentInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			errorResponse(rw, fmt.Errorf("invalid JSON body: %v", err), http.StatusBadRequest)
			return
		}

		commentTxtDecoded, err := url.QueryUnescape(input.Comment)
		if err != nil {
			errorResponse(rw, fmt.Errorf("failed to unescape comment text: %v", err), http.StatusBadRequest)
			return
		}

		parent, err := commentStore().FindByID(ctx, parentID)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}

		reply, err := commentStore().Create(ctx, "", userID, commentTxtDecoded, &parentID)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}

		notifyOnComment(ctx, true, userID, parent.AuthorID, reply.ContentID, reply.Body)
		successResponse(rw, reply)
	}
}

func GetComment() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		commentID, err := utils.ParseID(mux.Vars(r)["CommentID"])
		if err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		comment, err := commentStore().FindByID(ctx, commentID)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}
		dataResponse(rw, comment)
	}
}

// ListComments returns one ranked page of top-level comments for a content
// item: most popular first, oldest first among equals, plus a continuation
// cursor when more rows exist.
func ListComments() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		contentID := mux.Vars(r)["ContentID"]

		cursor, limit, err := pageParams(r)
		if err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		rows, err := commentStore().ListTopLevel(ctx, contentID, cursor, limit)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}
		dataResponse(rw, buildPage(rows, limit))
	}
}

func ListReplies() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		commentID, err := utils.ParseID(mux.Vars(r)["CommentID"])
		if err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		cursor, limit, err := pageParams(r)
		if err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		rows, err := commentStore().ListReplies(ctx, commentID, cursor, limit)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}
		dataResponse(rw, buildPage(rows, limit))
	}
}

func ReplyCount() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		commentID, err := utils.ParseID(mux.Vars(r)["CommentID"])
		if err != nil {
			errorResponse(rw, err, http.StatusBadRequest)
			return
		}

		count, err := commentStore().CountReplies(ctx, commentID)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}
		dataResponse(rw, count)
	}
}

// GetAllComments dumps every visible comment on a content item, replies
// included, in insertion order. Unranked and unpaginated; clients that need
// ranking use ListComments.
func GetAllComments() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		contentID := mux.Vars(r)["ContentID"]

		comments, err := commentStore().FindByContentID(ctx, contentID)
		if err != nil {
			storeErrorResponse(rw, err)
			return
		}
		dataResponse(rw, comments)
	}
}

func EditComment() http.HandlerFunc {
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

		var input models.CommentInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			errorResponse(rw, fmt.Errorf("invalid JSON body: %v", err), http.StatusBadRequest)
			return
		}

		if err := commentStore().Edit(ctx, commentID, userID, input.Comment); err != nil {
			storeErrorResponse(rw, err)
			return
		}
		dataResponse(rw, "Updated")
	}
}

func DeleteComment() http.HandlerFunc {
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

		if err := commentStore().Delete(ctx, commentID, userID); err != nil {
			storeErrorResponse(rw, err)
			return
		}
		dataResponse(rw, "Deleted")
	}
}

// pageParams reads the cursor and limit query parameters shared by the list
// endpoints.
func pageParams(r *http.Request) (*stores.Cursor, int, error) {
	query := r.URL.Query()

	limit, err := utils.ParseLimit(query)
	if err != nil {
		return nil, 0, err
	}

	var cursor *stores.Cursor
	if token := query.Get("cursor"); token != "" {
		decoded, err := stores.DecodeCursor(token)
		if err != nil {
			return nil, 0, err
		}
		cursor = &decoded
	}
	return cursor, limit, nil
}

// buildPage splits the store's limit+1 rows into the page the client sees and
// the has-more signal, minting the continuation cursor from the last row kept.
func buildPage(rows []stores.RankedComment, limit int) responses.CommentPage {
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	page := responses.CommentPage{Comments: rows, HasMore: hasMore}
	if hasMore && len(rows) > 0 {
		token := rows[len(rows)-1].SortKey().Encode()
		page.NextCursor = &token
	}
	return page
}

// notifyContentOwner resolves who owns the content from the catalog and sends
// them a comment notification. Failures only cost the notification; the
// comment itself is already committed.
func notifyContentOwner(ctx context.Context, userID, contentID, commentText string) {
	logger := configs.LogWithContext("comments", "notify-owner")

	oCID, err := primitive.ObjectIDFromHex(contentID)
	if err != nil {
		logger.Warn("couldn't parse content id", "content_id", contentID)
		return
	}
	content := models.Content{}
	if err := getContentCollection().FindOne(ctx, bson.M{"_id": oCID}).Decode(&content); err != nil {
		logger.Warn("couldn't resolve content owner", "content_id", contentID, "error", err)
		return
	}
	notifyOnComment(ctx, false, userID, content.UserID, contentID, commentText)
}
