package internal

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"

	"github.com/jamesprial/go-lolz-api-wrapper/pkg/types"
)

// Params is the flat parameter bag of a single API call. Values become the
// query string of GET requests and the form body of everything else.
type Params struct {
	values url.Values
	files  []filePart
}

type filePart struct {
	field string
	file  types.File
}

// NewParams returns an empty parameter bag.
func NewParams() *Params {
	return &Params{values: url.Values{}}
}

// Set records a required parameter. It is sent even when empty.
func (p *Params) Set(key string, value any) *Params {
	p.add(key, value)
	return p
}

// Opt records an optional parameter only when value is truthy: non-zero
// numbers, non-empty strings, true, and non-empty slices or maps.
func (p *Params) Opt(key string, value any) *Params {
	if IsFalsy(value) {
		return p
	}
	p.add(key, value)
	return p
}

// File attaches an upload under the given multipart field name.
func (p *Params) File(field string, f types.File) *Params {
	p.files = append(p.files, filePart{field: field, file: f})
	return p
}

// Values returns the encoded key/value pairs. A nil bag has no values.
func (p *Params) Values() url.Values {
	if p == nil {
		return url.Values{}
	}
	return p.values
}

// HasFiles reports whether the bag carries an upload.
func (p *Params) HasFiles() bool {
	return p != nil && len(p.files) > 0
}

// Empty reports whether there is nothing to send.
func (p *Params) Empty() bool {
	return p == nil || (len(p.values) == 0 && len(p.files) == 0)
}

func (p *Params) add(key string, value any) {
	switch v := value.(type) {
	case nil:
		p.values.Add(key, "")
	case string:
		p.values.Add(key, v)
	case bool:
		if v {
			p.values.Add(key, "1")
		} else {
			p.values.Add(key, "0")
		}
	case int:
		p.values.Add(key, strconv.Itoa(v))
	case int64:
		p.values.Add(key, strconv.FormatInt(v, 10))
	case float64:
		p.values.Add(key, strconv.FormatFloat(v, 'f', -1, 64))
	case []int:
		for _, n := range v {
			p.values.Add(key, strconv.Itoa(n))
		}
	case []string:
		for _, s := range v {
			p.values.Add(key, s)
		}
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p.values.Add(key+"["+k+"]", v[k])
		}
	default:
		p.values.Add(key, fmt.Sprint(v))
	}
}

// IsFalsy reports whether value counts as "not provided".
func IsFalsy(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return rv.IsZero()
}
