package cms

import (
	"net/url"
	"strconv"
	"strings"
)

// Queries are forwarded to the CMS as-is. Filters is an opaque expression such
// as "slug[equals]walker"; it is never parsed here.
type Queries struct {
	DraftKey         string
	Limit            *int
	Offset           *int
	Orders           string
	Q                string
	Fields           []string
	IDs              []string
	Filters          string
	Depth            *int
	RichEditorFormat string
}

// Int returns a pointer to n, for the optional numeric query fields.
func Int(n int) *int {
	return &n
}

// Values encodes q as URL query parameters. A nil receiver encodes to nothing.
func (q *Queries) Values() url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}
	setString(v, "draftKey", q.DraftKey)
	setInt(v, "limit", q.Limit)
	setInt(v, "offset", q.Offset)
	setString(v, "orders", q.Orders)
	setString(v, "q", q.Q)
	setString(v, "fields", strings.Join(q.Fields, ","))
	setString(v, "ids", strings.Join(q.IDs, ","))
	setString(v, "filters", q.Filters)
	setInt(v, "depth", q.Depth)
	setString(v, "richEditorFormat", q.RichEditorFormat)
	return v
}

// Clone returns a copy that can be modified without touching q.
func (q *Queries) Clone() *Queries {
	if q == nil {
		return &Queries{}
	}
	c := *q
	c.Fields = append([]string(nil), q.Fields...)
	c.IDs = append([]string(nil), q.IDs...)
	if q.Limit != nil {
		c.Limit = Int(*q.Limit)
	}
	if q.Offset != nil {
		c.Offset = Int(*q.Offset)
	}
	if q.Depth != nil {
		c.Depth = Int(*q.Depth)
	}
	return &c
}

func setString(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setInt(v url.Values, key string, value *int) {
	if value != nil {
		v.Set(key, strconv.Itoa(*value))
	}
}
