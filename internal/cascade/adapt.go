package cascade

import (
	"context"

	"crm-master-api/internal/repo"
)

// LevelOf adapts a typed collection into a Level. Children are discovered
// by running parentID over the local rows against the frontier.
func LevelOf[T repo.Record[T]](col *repo.Collection[T], parentID func(T) repo.ID) Level {
	return Level{
		Name: col.Name(),
		Children: func(frontier map[repo.ID]struct{}) []Node {
			var out []Node
			for _, item := range col.Items() {
				if _, ok := frontier[parentID(item)]; ok {
					out = append(out, Node{ID: item.RecordID(), Status: item.RecordStatus()})
				}
			}
			return out
		},
		SetStatusLocal: col.SetStatusLocal,
		PatchStatus:    col.PatchStatus,
		Refetch: func(ctx context.Context) {
			col.Refetch(ctx)
		},
	}
}

// RootLevelOf adapts a collection whose rows are cascade roots; no parent
// lookup is ever consulted on the root level.
func RootLevelOf[T repo.Record[T]](col *repo.Collection[T]) Level {
	return LevelOf(col, func(T) repo.ID { return "" })
}
