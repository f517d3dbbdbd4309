// Package breadcrumb builds nested breadcrumb navigation trees from the
// routes registered with a host router. It integrates with routers that can
// enumerate their routing table, such as chi and echo, and derives
// parent/child relationships from URL prefix containment rather than from
// declared nesting.
package breadcrumb
