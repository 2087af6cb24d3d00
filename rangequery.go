package stripeapi

// RangeQuery filters a list by a timestamp field such as created. Either an
// exact value is given, or any of the bounds. Use Exactly, or Between to
// create one for the common cases.
type RangeQuery struct {
	Exact *Timestamp

	// Gt and Gte are the exclusive and inclusive lower bounds.
	Gt  *Timestamp
	Gte *Timestamp

	// Lt and Lte are the exclusive and inclusive upper bounds.
	Lt  *Timestamp
	Lte *Timestamp
}

var _ FormAppender = RangeQuery{}

func ts(t Timestamp) *Timestamp { return &t }

// Exactly returns a RangeQuery that matches the given timestamp only.
func Exactly(t Timestamp) *RangeQuery {
	return &RangeQuery{
		Exact: ts(t),
	}
}

// Between returns a RangeQuery matching timestamps from the inclusive lower
// bound up to the exclusive upper bound.
func Between(from, to Timestamp) *RangeQuery {
	return &RangeQuery{
		Gte: ts(from),
		Lt:  ts(to),
	}
}

// After returns a RangeQuery matching timestamps after the given timestamp.
func After(t Timestamp) *RangeQuery {
	return &RangeQuery{
		Gt: ts(t),
	}
}

// Before returns a RangeQuery matching timestamps before the given timestamp.
func Before(t Timestamp) *RangeQuery {
	return &RangeQuery{
		Lt: ts(t),
	}
}

// AppendForm implements the FormAppender interface. An exact value is encoded
// as the key itself, otherwise each bound is encoded beneath the key.
func (q RangeQuery) AppendForm(f *Form, key string) {
	if q.Exact != nil {
		q.Exact.AppendForm(f, key)
		return
	}

	bounds := []struct {
		name string
		val  *Timestamp
	}{
		{"gt", q.Gt},
		{"gte", q.Gte},
		{"lt", q.Lt},
		{"lte", q.Lte},
	}

	for _, b := range bounds {
		if b.val != nil {
			b.val.AppendForm(f, FormKey(key, b.name))
		}
	}
}
