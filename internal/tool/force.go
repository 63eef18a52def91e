package tool

// ForcePermission wraps a tool so it always requires confirmation under
// the ask policy, regardless of its own declaration.
func ForcePermission(t Tool) Tool {
	return forcedPermission{Tool: t}
}

type forcedPermission struct {
	Tool
}

func (forcedPermission) RequiresPermission() bool { return true }
