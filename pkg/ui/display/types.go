// Package display holds the format-independent results commands hand to
// renderers
package display

import (
	"github.com/arthur-debert/fsimage/pkg/errors"
)

// QueryResult is the set of paths a query evaluated to
type QueryResult struct {
	Query string  `json:"query" yaml:"query"`
	Root  string  `json:"root" yaml:"root"`
	Paths []Entry `json:"paths" yaml:"paths"`
	Count int     `json:"count" yaml:"count"`
}

// Entry is one stored path of a result
type Entry struct {
	Path string `json:"path" yaml:"path"`
	Kind string `json:"kind" yaml:"kind"`
}

// IsDir reports whether the entry stands for a whole directory
func (e Entry) IsDir() bool {
	return e.Kind == "directory"
}

// ModuleList describes the configured modules and named queries
type ModuleList struct {
	Modules []ModuleInfo `json:"modules" yaml:"modules"`
	Queries []QueryInfo  `json:"queries" yaml:"queries"`
}

// ModuleInfo describes one configured module
type ModuleInfo struct {
	Name        string `json:"name" yaml:"name"`
	Kind        string `json:"kind" yaml:"kind"`
	Description string `json:"description" yaml:"description"`
}

// QueryInfo describes one named query
type QueryInfo struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"query" yaml:"query"`
}

// ErrorInfo is the machine-readable form of an error
type ErrorInfo struct {
	Code    string                 `json:"code" yaml:"code"`
	Message string                 `json:"message" yaml:"message"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// NewErrorInfo extracts code and details from err
func NewErrorInfo(err error) ErrorInfo {
	details := errors.GetErrorDetails(err)
	if len(details) == 0 {
		details = nil
	}
	return ErrorInfo{
		Code:    string(errors.GetErrorCode(err)),
		Message: err.Error(),
		Details: details,
	}
}
