package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/pkg/api"
)

var _ api.FriendServiceHandler = (*FriendService)(nil)

// FriendService implements the Connect FriendService.
type FriendService struct {
	store storage.FriendStore
}

// NewFriendService creates a new FriendService with the given storage backend.
func NewFriendService(store storage.FriendStore) *FriendService {
	return &FriendService{store: store}
}

// AddFriend adds a name to the caller's friends list. Adding a name twice
// returns the existing entry.
func (s *FriendService) AddFriend(ctx context.Context, req *connect.Request[api.AddFriendRequest]) (*connect.Response[api.AddFriendResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("name required"))
	}

	friend := &models.Friend{UserID: userID, Name: name}
	if err := s.store.AddFriend(ctx, friend); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("user no longer exists"))
		}
		slog.Error("AddFriend failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Friend added", "user_id", userID, "friend_id", friend.ID)
	return connect.NewResponse(&api.AddFriendResponse{Friend: toAPIFriend(friend)}), nil
}

// ListFriends returns the caller's friends ordered by name.
func (s *FriendService) ListFriends(ctx context.Context, req *connect.Request[api.ListFriendsRequest]) (*connect.Response[api.ListFriendsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	friends, err := s.store.ListFriends(ctx, userID)
	if err != nil {
		slog.Error("ListFriends failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]api.Friend, 0, len(friends))
	for _, f := range friends {
		out = append(out, toAPIFriend(f))
	}
	return connect.NewResponse(&api.ListFriendsResponse{Friends: out}), nil
}
