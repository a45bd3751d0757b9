package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	Fatal    bool
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Structural errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryStructural,
		Message:  "fiber has no parent",
		Detail:   "A non-root fiber was visited without a parent link. The fiber tree is malformed; this indicates an engine bug, not bad input.",
		Fatal:    true,
	},
	"E002": {
		Category: CategoryStructural,
		Message:  "parent fiber has no host node",
		Detail:   "A fiber's parent was visited before its host node was created. Traversal is pre-order, so this indicates a corrupted tree.",
		Fatal:    true,
	},
	"E003": {
		Category: CategoryHost,
		Message:  "leaf node cannot host children",
		Detail:   "An element declared children under a text element. The offending subtree is dropped and the rest of the tree still renders.",
	},
	"E004": {
		Category: CategoryStructural,
		Message:  "render pass already consumed",
		Detail:   "Step was called on a pass that already committed or aborted. Create a new pass per render.",
		Fatal:    true,
	},
	"E005": {
		Category: CategoryHost,
		Message:  "scheduler refused render work",
		Detail:   "The scheduler is stopped and grants no more idle slots. The pass aborts; the previous baseline stands untouched.",
		Fatal:    true,
	},

	// ============================================
	// Protocol errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryProtocol,
		Message:  "malformed patch frame",
		Detail:   "A patch frame failed to decode. The stream is out of sync; the client should reconnect and resync from a snapshot.",
	},

	// ============================================
	// Config errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryConfig,
		Message:  "config file not found",
	},
	"E201": {
		Category: CategoryConfig,
		Message:  "config file invalid",
	},

	// ============================================
	// Snapshot errors (E300-E399)
	// ============================================

	"E300": {
		Category: CategorySnapshot,
		Message:  "unknown snapshot backend",
	},
	"E301": {
		Category: CategorySnapshot,
		Message:  "snapshot store closed",
	},
}
