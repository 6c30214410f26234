package chat

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MaxTitleLength caps chat titles.
const MaxTitleLength = 256

// Policy rejections. Pure decisions only; the application service translates
// these into the client-facing messages and the transport layer into statuses.
var (
	ErrNotCreator          = errors.New("actor is not the chat creator")
	ErrInvalidTitle        = errors.New("chat title must be between 1 and 256 characters")
	ErrDuplicateTitle      = errors.New("chat title already exists")
	ErrAlreadyAttached     = errors.New("user already attached to chat")
	ErrNotAttached         = errors.New("user not attached to chat")
	ErrCannotDetachCreator = errors.New("creator cannot be detached from chat")
)

// CreateRequest is the input for ValidateCreate.
type CreateRequest struct {
	Title     string
	CreatorID uuid.UUID
	UserIDs   []uuid.UUID
}

// AuthorizeMutation gates update and remove: only the creator may mutate.
func AuthorizeMutation(c Chat, actorID uuid.UUID) error {
	if c.CreatorID != actorID {
		return ErrNotCreator
	}
	return nil
}

// ValidateCreate checks the title against every existing title (global,
// case-sensitive) and builds the initial chat. The creator is always a member
// of the result, regardless of the requested member list.
func ValidateCreate(existingTitles []string, req CreateRequest, now time.Time) (Chat, error) {
	if err := validateTitle(req.Title); err != nil {
		return Chat{}, err
	}
	if lo.Contains(existingTitles, req.Title) {
		return Chat{}, ErrDuplicateTitle
	}

	members := make([]uuid.UUID, 0, len(req.UserIDs)+1)
	members = append(members, req.UserIDs...)
	members = append(members, req.CreatorID)

	return Chat{
		ID:        uuid.New(),
		CreatorID: req.CreatorID,
		Title:     req.Title,
		CreatedAt: now,
		MemberIDs: lo.Uniq(members),
	}, nil
}

// ValidateAttach returns the member list with userID added, rejecting a
// duplicate attach outright rather than ignoring it.
func ValidateAttach(c Chat, userID uuid.UUID) ([]uuid.UUID, error) {
	if c.HasMember(userID) {
		return nil, ErrAlreadyAttached
	}
	members := make([]uuid.UUID, 0, len(c.MemberIDs)+1)
	members = append(members, c.MemberIDs...)
	return append(members, userID), nil
}

// ValidateDetach returns the member list with userID removed. The absence
// check runs before the creator check, so detaching an id that is not a
// member reports ErrNotAttached even when that id is the creator's.
func ValidateDetach(c Chat, userID uuid.UUID) ([]uuid.UUID, error) {
	if !c.HasMember(userID) {
		return nil, ErrNotAttached
	}
	if userID == c.CreatorID {
		return nil, ErrCannotDetachCreator
	}
	return lo.Filter(c.MemberIDs, func(id uuid.UUID, _ int) bool {
		return id != userID
	}), nil
}

// ValidateUpdate re-applies the creator gate, then replaces title and member
// list wholesale. The member list is taken exactly as provided; the creator is
// not re-inserted when the caller omits it.
func ValidateUpdate(c Chat, actorID uuid.UUID, title string, memberIDs []uuid.UUID) (Chat, error) {
	if err := AuthorizeMutation(c, actorID); err != nil {
		return Chat{}, err
	}
	if err := validateTitle(title); err != nil {
		return Chat{}, err
	}

	updated := c
	updated.Title = title
	updated.MemberIDs = lo.Uniq(memberIDs)
	return updated, nil
}

func validateTitle(title string) error {
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrInvalidTitle
	}
	return nil
}
