package stripeapi

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v72/form"
)

// FormAppender is implemented by parameter types that need control over how
// they are encoded, such as tagged unions where only the payload of the
// selected variant is sent. AppendForm should add the pairs for the value
// beneath the given key.
type FormAppender interface {
	AppendForm(f *Form, key string)
}

type pair struct {
	key   string
	value string
}

// Form is an ordered set of key/value pairs that will be encoded into either an
// x-www-form-urlencoded body or a query string. Keys follow the bracketed
// convention used by the Stripe API, for example items[0][price].
type Form struct {
	pairs []pair
}

// Params is used for defining ad-hoc parameters that are passed to the Stripe
// API. Nested Params, slices, and maps are encoded using bracketed keys, and
// the keys of each map are encoded in sorted order.
type Params map[string]interface{}

var (
	timeType = reflect.TypeOf(time.Time{})

	_ FormAppender = (*Form)(nil)
)

// FormKey returns the key for the child beneath the given parent. If the
// parent is empty then the child is returned as is.
func FormKey(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "[" + child + "]"
}

// EncodeForm encodes the given parameters into a new Form. The parameters are
// typically a pointer to a struct whose fields carry a form tag,
//
//     type CreateParams struct {
//         Customer  string            `form:"customer"`
//         ReturnURL *string           `form:"return_url"`
//         Metadata  map[string]string `form:"metadata"`
//     }
//
// nil pointers, maps, and slices are treated as absent and emit nothing. An
// empty, but non-nil map or slice emits the key with an empty value, which is
// how the Stripe API is told to clear a field.
func EncodeForm(params interface{}) *Form {
	f := &Form{}
	AppendForm(f, "", params)
	return f
}

// AppendForm appends the encoding of the given value beneath the given key to
// the Form.
func AppendForm(f *Form, key string, v interface{}) {
	appendValue(f, key, reflect.ValueOf(v))
}

// formTag returns the name in the form tag of the given field, and whether the
// field should be omitted when it is the zero value.
func formTag(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("form")

	name, opts, _ := strings.Cut(tag, ",")
	return name, opts == "omitempty"
}

func appendStruct(f *Form, key string, v reflect.Value) {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		if !sf.IsExported() {
			continue
		}

		name, omitempty := formTag(sf)

		if name == "-" {
			continue
		}

		fv := v.Field(i)

		if name == "" {
			if sf.Anonymous {
				appendValue(f, key, fv)
			}
			continue
		}

		if omitempty && fv.IsZero() {
			continue
		}
		appendValue(f, FormKey(key, name), fv)
	}
}

func appendMap(f *Form, key string, v reflect.Value) {
	if v.Len() == 0 {
		f.Add(key, "")
		return
	}

	keys := make([]string, 0, v.Len())
	vals := make(map[string]reflect.Value, v.Len())

	iter := v.MapRange()

	for iter.Next() {
		k := fmt.Sprint(iter.Key().Interface())

		keys = append(keys, k)
		vals[k] = iter.Value()
	}

	sort.Strings(keys)

	for _, k := range keys {
		appendValue(f, FormKey(key, k), vals[k])
	}
}

func appendSlice(f *Form, key string, v reflect.Value) {
	if v.Len() == 0 {
		f.Add(key, "")
		return
	}

	for i := 0; i < v.Len(); i++ {
		appendValue(f, key+"["+strconv.FormatInt(int64(i), 10)+"]", v.Index(i))
	}
}

func appendValue(f *Form, key string, v reflect.Value) {
	if !v.IsValid() {
		return
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return
		}
	}

	if v.CanInterface() {
		if a, ok := v.Interface().(FormAppender); ok {
			a.AppendForm(f, key)
			return
		}
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		appendValue(f, key, v.Elem())
	case reflect.Struct:
		if v.Type() == timeType {
			f.Add(key, strconv.FormatInt(v.Interface().(time.Time).Unix(), 10))
			return
		}
		appendStruct(f, key, v)
	case reflect.Map:
		appendMap(f, key, v)
	case reflect.Slice, reflect.Array:
		appendSlice(f, key, v)
	case reflect.String:
		f.Add(key, v.String())
	case reflect.Bool:
		f.Add(key, strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f.Add(key, strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f.Add(key, strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f.Add(key, strconv.FormatFloat(v.Float(), 'f', -1, 64))
	}
}

// Add appends the given key/value pair to the Form.
func (f *Form) Add(key, value string) {
	f.pairs = append(f.pairs, pair{
		key:   key,
		value: value,
	})
}

// Set replaces any pairs with the given key with the given value. If no pair
// exists for the key then it is appended.
func (f *Form) Set(key, value string) {
	f.Del(key)
	f.Add(key, value)
}

// Del removes all pairs with the given key.
func (f *Form) Del(key string) {
	pairs := f.pairs[:0]

	for _, p := range f.pairs {
		if p.key != key {
			pairs = append(pairs, p)
		}
	}
	f.pairs = pairs
}

// Get returns the first value for the given key, and whether or not the key
// was in the Form.
func (f *Form) Get(key string) (string, bool) {
	if f == nil {
		return "", false
	}

	for _, p := range f.pairs {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// Len returns the number of pairs in the Form.
func (f *Form) Len() int {
	if f == nil {
		return 0
	}
	return len(f.pairs)
}

// Clone returns a copy of the Form that can be modified independently.
func (f *Form) Clone() *Form {
	if f == nil {
		return &Form{}
	}

	pairs := make([]pair, len(f.pairs))
	copy(pairs, f.pairs)

	return &Form{
		pairs: pairs,
	}
}

// AppendForm implements the FormAppender interface. Each pair in the Form is
// nested beneath the given key.
func (f *Form) AppendForm(dst *Form, key string) {
	for _, p := range f.pairs {
		k := p.key

		if key != "" {
			if i := strings.Index(k, "["); i >= 0 {
				k = FormKey(key, k[:i]) + k[i:]
			} else {
				k = FormKey(key, k)
			}
		}
		dst.Add(k, p.value)
	}
}

// Encode encodes the Form into an x-www-form-urlencoded string. Pairs are
// encoded in the order they were added, and the brackets in each key are left
// unescaped.
func (f *Form) Encode() string {
	if f == nil {
		return ""
	}

	var vals form.Values

	for _, p := range f.pairs {
		vals.Add(p.key, p.value)
	}
	return vals.Encode()
}

func (f *Form) String() string { return f.Encode() }

// Encode encodes the current Params into an x-www-form-urlencoded string and
// returns it.
func (p Params) Encode() string { return EncodeForm(p).Encode() }
