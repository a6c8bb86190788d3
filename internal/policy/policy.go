// Package policy decides whether an actor may perform an action on an owned
// resource. All ownership rules live in one table.
package policy

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/model"
)

// ResourceType names a kind of owned resource.
type ResourceType string

const (
	ResourcePost    ResourceType = "post"
	ResourceComment ResourceType = "comment"
	ResourceLike    ResourceType = "like"
)

// Action names an operation on a resource.
type Action string

const (
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
	ActionUploadCover Action = "upload_cover"
)

// Resource is what the caller loaded before asking for a decision.
// Found must be false when the resource is absent or, for a comment, does not
// belong to the stated parent post.
type Resource struct {
	Type          ResourceType
	Found         bool
	OwnerID       uuid.UUID
	ParentOwnerID uuid.UUID
}

// Post describes a loaded post.
func Post(p model.Post) Resource {
	return Resource{Type: ResourcePost, Found: true, OwnerID: p.AuthorID}
}

// Comment describes a loaded comment under its parent post.
func Comment(c model.Comment, parent model.Post) Resource {
	return Resource{
		Type:          ResourceComment,
		Found:         c.PostID == parent.ID,
		OwnerID:       c.UserID,
		ParentOwnerID: parent.AuthorID,
	}
}

// Like describes a like the actor is about to create or remove on a post.
func Like() Resource {
	return Resource{Type: ResourceLike, Found: true}
}

// Missing describes a resource that could not be loaded.
func Missing(t ResourceType) Resource {
	return Resource{Type: t}
}

type rule func(actorID uuid.UUID, r Resource) bool

type key struct {
	resource ResourceType
	action   Action
}

func isOwner(actorID uuid.UUID, r Resource) bool {
	return actorID == r.OwnerID
}

// Comments are moderated by the author of the post they were left on. The
// comment's own author has no delete right.
func isParentOwner(actorID uuid.UUID, r Resource) bool {
	return actorID == r.ParentOwnerID
}

// A like is owned by whoever acts on it.
func isActor(actorID uuid.UUID, _ Resource) bool {
	return actorID != uuid.Nil
}

var rules = map[key]rule{
	{ResourcePost, ActionUpdate}:      isOwner,
	{ResourcePost, ActionDelete}:      isOwner,
	{ResourcePost, ActionUploadCover}: isOwner,
	{ResourceComment, ActionDelete}:   isParentOwner,
	{ResourceLike, ActionCreate}:      isActor,
	{ResourceLike, ActionDelete}:      isActor,
}

// Authorize returns nil when actorID may perform action on r. Existence is
// checked before ownership: a missing resource is ErrNotFound, a present one
// the actor is not entitled to is ErrForbidden.
func Authorize(actorID uuid.UUID, r Resource, action Action) error {
	if !r.Found {
		return fmt.Errorf("%s: %w", r.Type, model.ErrNotFound)
	}

	allow, ok := rules[key{r.Type, action}]
	if !ok || !allow(actorID, r) {
		return fmt.Errorf("%s %s: %w", action, r.Type, model.ErrForbidden)
	}

	return nil
}
