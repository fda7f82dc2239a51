// Package status implements the order lifecycle: the status registry,
// the per-role transition policy, and the transition application logic.
package status

import "fmt"

// Order statuses
const (
	Pending    = "PENDING"
	Confirmed  = "CONFIRMED"
	Processing = "PROCESSING"
	Shipped    = "SHIPPED"
	Delivered  = "DELIVERED"
	Cancelled  = "CANCELLED"
	Refunded   = "REFUNDED"
)

// All lists every valid status, in lifecycle order.
var All = []string{Pending, Confirmed, Processing, Shipped, Delivered, Cancelled, Refunded}

// UnknownStatusError signals a status value outside the enumerated set.
// Treated as a data-integrity problem, never silently defaulted.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown order status: %q", e.Status)
}

// Meta is the presentation metadata for a status
type Meta struct {
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Terminal bool   `json:"terminal"`
}

var registry = map[string]Meta{
	Pending:    {Label: "Pending", Icon: "clock", Color: "bg-yellow-100 text-yellow-800"},
	Confirmed:  {Label: "Confirmed", Icon: "check-circle", Color: "bg-blue-100 text-blue-800"},
	Processing: {Label: "Processing", Icon: "package", Color: "bg-indigo-100 text-indigo-800"},
	Shipped:    {Label: "Shipped", Icon: "truck", Color: "bg-purple-100 text-purple-800"},
	Delivered:  {Label: "Delivered", Icon: "check-check", Color: "bg-green-100 text-green-800", Terminal: true},
	Cancelled:  {Label: "Cancelled", Icon: "x-circle", Color: "bg-red-100 text-red-800", Terminal: true},
	Refunded:   {Label: "Refunded", Icon: "rotate-ccw", Color: "bg-gray-100 text-gray-800", Terminal: true},
}

// Metadata returns the display metadata for a status. Unknown values
// return *UnknownStatusError.
func Metadata(s string) (Meta, error) {
	meta, ok := registry[s]
	if !ok {
		return Meta{}, &UnknownStatusError{Status: s}
	}
	return meta, nil
}

// IsValid reports whether s is one of the enumerated statuses.
func IsValid(s string) bool {
	_, ok := registry[s]
	return ok
}

// IsTerminal reports whether s admits no further transitions. Unknown
// statuses report false; callers validating input should use Metadata.
func IsTerminal(s string) bool {
	return registry[s].Terminal
}
