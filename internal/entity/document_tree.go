package entity

import (
	"sort"
	"time"
)

// TreeNode is either a *DocumentNode or a *CategoryNode. The variant is
// decided once, when the raw store value is parsed.
type TreeNode interface {
	Key() string
	isTreeNode()
}

// DocumentNode is a leaf carrying an upload or review marker.
type DocumentNode struct {
	key      string
	Document *Document
}

func (n *DocumentNode) Key() string { return n.key }
func (*DocumentNode) isTreeNode()   {}

// CategoryNode groups further nodes. Children are ordered by key.
type CategoryNode struct {
	key      string
	Children []TreeNode
	index    map[string]TreeNode
	size     int
}

func (n *CategoryNode) Key() string { return n.key }
func (*CategoryNode) isTreeNode()   {}

// Child returns the child stored under key, or nil.
func (n *CategoryNode) Child(key string) TreeNode {
	if n == nil {
		return nil
	}
	return n.index[key]
}

// Len is the number of children.
func (n *CategoryNode) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Size is the number of entries as stored, scalars included.
func (n *CategoryNode) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *CategoryNode) replace(key string, node TreeNode) {
	for i, child := range n.Children {
		if child.Key() == key {
			n.Children[i] = node
		}
	}
	n.index[key] = node
}

// IsDocumentShape reports whether a raw object is a document: it carries an
// upload marker, or both review markers.
func IsDocumentShape(m map[string]interface{}) bool {
	if _, ok := m["uploadedAt"]; ok {
		return true
	}
	_, reviewed := m["reviewedAt"]
	_, status := m["status"]
	return reviewed && status
}

// ParseNode classifies a raw store value. Scalars are neither documents nor
// categories and yield ok=false.
func ParseNode(key string, raw interface{}, loc *time.Location) (TreeNode, bool) {
	m := AsMap(raw)
	if m == nil {
		return nil, false
	}
	if IsDocumentShape(m) {
		return &DocumentNode{key: key, Document: ParseDocument(key, m, loc)}, true
	}
	return parseCategory(key, m, loc), true
}

func parseCategory(key string, m map[string]interface{}, loc *time.Location) *CategoryNode {
	node := &CategoryNode{key: key, index: make(map[string]TreeNode, len(m)), size: len(m)}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		child, ok := ParseNode(k, m[k], loc)
		if !ok {
			continue
		}
		node.Children = append(node.Children, child)
		node.index[k] = child
	}
	return node
}

// ParseDocument reads a document object. The store key is the id unless the
// object carries its own.
func ParseDocument(key string, m map[string]interface{}, loc *time.Location) *Document {
	id := stringField(m, "id")
	if id == "" {
		id = key
	}
	return &Document{
		Id:              id,
		WorkerId:        stringField(m, "workerId"),
		DocumentType:    stringField(m, "documentType"),
		Category:        stringField(m, "category"),
		Subcategory:     stringField(m, "subcategory"),
		FileName:        stringField(m, "fileName"),
		FileURL:         stringField(m, "fileUrl"),
		FileType:        stringField(m, "fileType"),
		FileSize:        intField(m, "fileSize"),
		Status:          DocumentStatus(stringField(m, "status")),
		UploadedAt:      ParseTimestamp(m["uploadedAt"], loc),
		ReviewedAt:      ParseTimestamp(m["reviewedAt"], loc),
		ReviewedBy:      stringField(m, "reviewedBy"),
		RejectionReason: optionalStringField(m, "rejectionReason"),
		Description:     stringField(m, "description"),
		Orden:           intField(m, "orden"),
		VerificationURL: stringField(m, "verificationUrl"),
		Raw:             m,
	}
}

// WorkerDocuments is one worker's document tree:
// worker -> category -> (document | subcategory -> document).
type WorkerDocuments struct {
	WorkerId string
	Root     *CategoryNode
}

// ParseWorkerDocuments parses the subtree at WorkerDocuments/{workerId}.
// An absent subtree yields an empty root.
func ParseWorkerDocuments(workerId string, raw interface{}, loc *time.Location) *WorkerDocuments {
	m := AsMap(raw)
	if m == nil {
		m = map[string]interface{}{}
	}
	root := parseCategory(workerId, m, loc)
	promoteSlots(root, m, loc)
	return &WorkerDocuments{WorkerId: workerId, Root: root}
}

// promoteSlots reparses the fixed-depth slots (singleton categories and
// collection entries) as documents when they carry a status, even without
// upload or review markers.
func promoteSlots(root *CategoryNode, m map[string]interface{}, loc *time.Location) {
	for _, category := range []string{CategoryHojaDeVida, CategoryAntecedentes} {
		promote(root, category, AsMap(m[category]), loc)
	}

	cert, ok := root.Child(CategoryCertificaciones).(*CategoryNode)
	if !ok {
		return
	}
	certRaw := AsMap(m[CategoryCertificaciones])
	for _, sub := range []string{SubcategoryTitulos, SubcategoryCartas} {
		collection, ok := cert.Child(sub).(*CategoryNode)
		if !ok {
			continue
		}
		subRaw := AsMap(certRaw[sub])
		for _, child := range collection.Children {
			promote(collection, child.Key(), AsMap(subRaw[child.Key()]), loc)
		}
	}
}

func promote(parent *CategoryNode, key string, raw map[string]interface{}, loc *time.Location) {
	if _, isCategory := parent.Child(key).(*CategoryNode); !isCategory || raw == nil {
		return
	}
	if _, ok := raw["status"].(string); !ok {
		return
	}
	parent.replace(key, &DocumentNode{key: key, Document: ParseDocument(key, raw, loc)})
}

// ParseAllWorkerDocuments parses the whole WorkerDocuments subtree, one entry
// per worker, ordered by worker id. Non-object entries are skipped.
func ParseAllWorkerDocuments(raw interface{}, loc *time.Location) []*WorkerDocuments {
	m := AsMap(raw)
	ids := make([]string, 0, len(m))
	for id, v := range m {
		if AsMap(v) != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]*WorkerDocuments, 0, len(ids))
	for _, id := range ids {
		out = append(out, ParseWorkerDocuments(id, m[id], loc))
	}
	return out
}

// Singleton returns the node stored at a singleton category, or nil.
func (w *WorkerDocuments) Singleton(category string) TreeNode {
	if w == nil {
		return nil
	}
	return w.Root.Child(category)
}

// Collection returns the certificaciones subcategory node, or nil when it is
// absent or was stored as a document.
func (w *WorkerDocuments) Collection(subcategory string) *CategoryNode {
	if w == nil {
		return nil
	}
	cert, ok := w.Root.Child(CategoryCertificaciones).(*CategoryNode)
	if !ok {
		return nil
	}
	sub, _ := cert.Child(subcategory).(*CategoryNode)
	return sub
}

// Walk visits every document in the tree, depth first. Category levels are
// recursed without a depth limit.
func Walk(node TreeNode, visit func(*Document)) {
	switch n := node.(type) {
	case *DocumentNode:
		visit(n.Document)
	case *CategoryNode:
		if n == nil {
			return
		}
		for _, child := range n.Children {
			Walk(child, visit)
		}
	}
}
