package pool

// RemapReferences rewrites every reference field of o through mapping.
// IDs missing from mapping and null references are left untouched. The
// object's own ID is not changed. It returns the number of rewritten fields.
func RemapReferences(o Object, mapping map[ObjectID]ObjectID) int {
	if len(mapping) == 0 {
		return 0
	}
	r := &remapper{mapping: mapping}
	o.Walk(r)
	return r.n
}

type remapper struct {
	inspector
	mapping map[ObjectID]ObjectID
	n       int
}

func (r *remapper) Ref(p *ObjectID, _ Edge) {
	if id, ok := r.mapping[*p]; ok {
		*p = id
		r.n++
	}
}

func (r *remapper) NullRef(p *NullableObjectID, _ Edge) {
	old, ok := p.Get()
	if !ok {
		return
	}
	if id, ok := r.mapping[old]; ok {
		*p = Some(id)
		r.n++
	}
}

// Detach removes references to id from o and reports whether o changed.
// List entries keyed by id (child refs, ID lists, macro refs, labels) are
// dropped, nullable fields and list slots become null, and remaining
// plain ID fields are set to NullObjectID.
func Detach(o Object, id ObjectID) bool {
	d := &detacher{id: id}
	o.Walk(d)
	return d.changed
}

type detacher struct {
	inspector
	id      ObjectID
	changed bool
	drop    bool
}

func (d *detacher) Ref(p *ObjectID, _ Edge) {
	if *p == d.id {
		*p = NullObjectID
		d.changed = true
		d.drop = true
	}
}

func (d *detacher) NullRef(p *NullableObjectID, _ Edge) {
	if v, ok := p.Get(); ok && v == d.id {
		*p = NoObject
		d.changed = true
	}
}

func (d *detacher) pruned() bool {
	drop := d.drop
	d.drop = false
	return drop
}
