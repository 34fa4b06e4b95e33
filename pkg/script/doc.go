// Package script turns declarative layout operations into composer
// expressions.
//
// An [Op] is plain data, decoded from a layout document. Each op maps to
// exactly one fluent expression on a [layout.Composer]:
//
//	kind = "align"   LeftEdge(subject).MoveTo().RightEdge(target, margin)
//	kind = "center"  Center(subject).In(target).Horizontally(margin)
//	kind = "move"    Move(subject).Below(target, margin)
//
// [ApplyAll] validates a list of ops, resolves their node ids against a
// [scene.Scene] and runs them in order inside [layout.Compose].
package script
