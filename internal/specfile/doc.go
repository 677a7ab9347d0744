// Package specfile loads YAML form descriptions into form specs.
//
// A form file mirrors the form.Spec structure: a title, optional layout
// hints, and a field list. Kinds, button roles, and validators appear
// under their lowercase names; the loader resolves them to their typed
// counterparts and rejects names it does not know. The returned spec is
// validated, so it can go straight to a renderer.
//
//	title: Server Settings
//	min_width: 70
//	fields:
//	  - kind: text
//	    key: host
//	    label: Host
//	    default: localhost
//	    validators: [required]
//	  - kind: select
//	    key: proto
//	    label: Protocol
//	    options: [https, http]
//	    readonly: true
//	  - kind: button
//	    label: Connect
//	    role: submit
//
// Bound buttons (bind_to) load without a press handler; wiring one up
// requires building the spec in code.
package specfile
