package uiout

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSON is the machine Out. Text is dropped; fields accumulate in emission
// order into a record that Flush writes as one line of JSON.
type JSON struct {
	w     io.Writer
	stack []*jsonNode
	err   error
}

type jsonNode struct {
	name string
	obj  *object
	body *[]any
}

// NewJSON creates a machine Out.
func NewJSON(w io.Writer) *JSON {
	j := &JSON{w: w}
	j.reset()
	return j
}

func (j *JSON) reset() {
	j.stack = []*jsonNode{{obj: newObject()}}
}

func (j *JSON) top() *jsonNode {
	return j.stack[len(j.stack)-1]
}

func (j *JSON) Text(string) {}

func (j *JSON) FieldString(name, value string) {
	j.top().obj.set(name, value)
}

func (j *JSON) FieldInt(name string, value int) {
	j.top().obj.set(name, value)
}

func (j *JSON) FieldCoreAddr(name string, addr uint64, ptrBits int) {
	j.top().obj.set(name, FormatCoreAddr(addr, ptrBits))
}

func (j *JSON) Annotate(string, ...string) {}

func (j *JSON) BeginTable(id string, cols []Column) {
	hdr := make([]any, 0, len(cols))
	for _, col := range cols {
		h := newObject()
		h.set("width", col.Width)
		h.set("col_name", col.Name)
		h.set("colhdr", col.Header)
		hdr = append(hdr, h)
	}
	table := newObject()
	table.set("hdr", hdr)
	body := []any{}
	j.stack = append(j.stack, &jsonNode{name: id, obj: table, body: &body})
}

func (j *JSON) EndTable() {
	node := j.pop()
	if node == nil || node.body == nil {
		return
	}
	node.obj.set("nr_rows", len(*node.body))
	node.obj.set("body", *node.body)
	j.attach(node)
}

func (j *JSON) BeginRow(name string) {
	j.BeginTuple(name)
}

func (j *JSON) EndRow() {
	j.EndTuple()
}

func (j *JSON) BeginTuple(name string) {
	j.stack = append(j.stack, &jsonNode{name: name, obj: newObject()})
}

func (j *JSON) EndTuple() {
	if node := j.pop(); node != nil {
		j.attach(node)
	}
}

func (j *JSON) Warning(msg string) {
	rec := newObject()
	rec.set("warning", msg)
	j.encode(rec)
}

func (j *JSON) Error(msg string) {
	rec := newObject()
	rec.set("error", msg)
	j.encode(rec)
}

func (j *JSON) IsMILike() bool {
	return true
}

// Flush writes the pending record, if any, and starts a new one.
func (j *JSON) Flush() error {
	root := j.stack[0].obj
	j.reset()
	if len(root.keys) > 0 {
		j.encode(root)
	}
	err := j.err
	j.err = nil
	return err
}

func (j *JSON) pop() *jsonNode {
	if len(j.stack) <= 1 {
		return nil
	}
	node := j.top()
	j.stack = j.stack[:len(j.stack)-1]
	return node
}

// attach adds a finished node to its parent: appended to a table body or
// set as a named member of a tuple.
func (j *JSON) attach(node *jsonNode) {
	parent := j.top()
	if parent.body != nil {
		*parent.body = append(*parent.body, node.obj)
		return
	}
	parent.obj.set(node.name, node.obj)
}

func (j *JSON) encode(v any) {
	if j.err != nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		j.err = err
		return
	}
	_, j.err = j.w.Write(append(data, '\n'))
}

// object is a JSON object that keeps its keys in insertion order. Setting
// an existing key replaces the value in place.
type object struct {
	keys []string
	vals map[string]any
}

func newObject() *object {
	return &object{vals: make(map[string]any)}
}

func (o *object) set(key string, value any) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = value
}

func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.vals[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
