package rules

import "github.com/yaklabco/cstyle/pkg/behaviour"

// DocSkeletonBehaviour closes a /*** banner when R is typed after it.
type DocSkeletonBehaviour struct {
	behaviour.BaseBehaviour
}

// NewDocSkeletonBehaviour creates the doc-skeleton behaviour.
func NewDocSkeletonBehaviour() *DocSkeletonBehaviour {
	return &DocSkeletonBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB001",
			"doc-skeleton",
			"Typing R after /*** opens a documentation skeleton",
			[]string{"comment"},
			behaviour.ClassDocSkeleton,
			behaviour.ActionInsertion,
		),
	}
}

// Apply implements behaviour.Behaviour.
func (r *DocSkeletonBehaviour) Apply(ctx *behaviour.Context) behaviour.Directive {
	if ctx.Text != "R" {
		return behaviour.None()
	}
	indent, ok := docSkeletonIndent(ctx.Line())
	if !ok {
		return behaviour.None()
	}
	return behaviour.Replace("R\n"+indent+"\n"+indent+"*/", behaviour.CursorAt(1, len(indent)))
}

// CommentDeleteBehaviour answers deletions in comments with the range as is,
// so that no later behaviour extends it.
type CommentDeleteBehaviour struct {
	behaviour.BaseBehaviour
}

// NewCommentDeleteBehaviour creates the comment deletion behaviour.
func NewCommentDeleteBehaviour() *CommentDeleteBehaviour {
	return &CommentDeleteBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB008",
			"comment-delete",
			"Plain deletion inside comments",
			[]string{"comment"},
			behaviour.ClassComment,
			behaviour.ActionDeletion,
		),
	}
}

// Apply implements behaviour.Behaviour.
func (r *CommentDeleteBehaviour) Apply(ctx *behaviour.Context) behaviour.Directive {
	return behaviour.AdjustRange(ctx.Range)
}

// SemicolonBehaviour types over a ; already right of the cursor.
type SemicolonBehaviour struct {
	behaviour.BaseBehaviour
}

// NewSemicolonBehaviour creates the semicolon skip behaviour.
func NewSemicolonBehaviour() *SemicolonBehaviour {
	return &SemicolonBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB009",
			"semicolon-skip",
			"Type over an existing ;",
			[]string{"punctuation"},
			behaviour.ClassPunctuationOperator,
			behaviour.ActionInsertion,
		),
	}
}

// Apply implements behaviour.Behaviour.
func (r *SemicolonBehaviour) Apply(ctx *behaviour.Context) behaviour.Directive {
	if ctx.Text == ";" && ctx.CharRight() == ";" {
		return behaviour.SkipOver()
	}
	return behaviour.None()
}
