package service

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"filedrive/internal/domain/models"
)

// BuildFolderTree assembles a flat owner-scoped folder list into a nested
// forest with locale-aware lexical ordering at every level, so the result
// is deterministic for a given set of names regardless of input order.
//
// A folder whose parent is not in the list (should not happen while the
// ownership invariant holds) is dropped rather than surfaced or
// duplicated.
func BuildFolderTree(folders []models.Folder) []*models.FolderNode {
	idToNode := make(map[string]*models.FolderNode, len(folders))
	for _, folder := range folders {
		idToNode[folder.ID] = &models.FolderNode{
			Folder:     folder,
			Subfolders: []*models.FolderNode{},
		}
	}

	roots := make([]*models.FolderNode, 0)
	for _, folder := range folders {
		node := idToNode[folder.ID]
		if folder.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := idToNode[*folder.ParentID]; ok {
			parent.Subfolders = append(parent.Subfolders, node)
		}
	}

	// Collators buffer internally and are not safe to share across
	// goroutines, so each assembly gets its own.
	c := collate.New(language.Und)
	sortTreeLevel(c, roots)

	return roots
}

func sortTreeLevel(c *collate.Collator, nodes []*models.FolderNode) {
	c.Sort(byFolderName{c: c, nodes: nodes})
	for _, node := range nodes {
		sortTreeLevel(c, node.Subfolders)
	}
}

// byFolderName adapts a node slice to the collate.Lister interface.
type byFolderName struct {
	c     *collate.Collator
	nodes []*models.FolderNode
}

func (b byFolderName) Len() int      { return len(b.nodes) }
func (b byFolderName) Swap(i, j int) { b.nodes[i], b.nodes[j] = b.nodes[j], b.nodes[i] }
func (b byFolderName) Bytes(i int) []byte {
	return []byte(b.nodes[i].Name)
}
