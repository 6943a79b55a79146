package ratings

import "context"

// TargetExistsFunc is a function type that checks if a target exists
type TargetExistsFunc func(ctx context.Context, id int64) (bool, error)

// CompositeTargetValidator validates targets by routing the kind to the
// matching existence check
type CompositeTargetValidator struct {
	postExists    TargetExistsFunc
	commentExists TargetExistsFunc
}

// NewCompositeTargetValidator creates a validator that checks both posts and
// comments. Pass nil for either function to skip validation for that kind.
func NewCompositeTargetValidator(postExists, commentExists TargetExistsFunc) *CompositeTargetValidator {
	return &CompositeTargetValidator{
		postExists:    postExists,
		commentExists: commentExists,
	}
}

// TargetExists checks if a live post or comment exists with the given id
func (v *CompositeTargetValidator) TargetExists(ctx context.Context, targetKind string, targetID int64) (bool, error) {
	switch targetKind {
	case TargetPost:
		if v.postExists != nil {
			return v.postExists(ctx, targetID)
		}
		return true, nil
	case TargetComment:
		if v.commentExists != nil {
			return v.commentExists(ctx, targetID)
		}
		return true, nil
	}
	return false, ErrInvalidTargetKind
}
