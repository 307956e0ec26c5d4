package harmony

import (
	"strings"
)

var globalPrefixes = []string{"@ohos.", "@kit.", "@hms.", "@arkts.", "@system."}

var globalExact = map[string]struct{}{
	"@ohos/hypium": {},
	"@ohos/hamock": {},
}

// commonGlobals are bundled by the host runtime.
var commonGlobals = map[string]string{
	"vue":         "Vue",
	"@vue/shared": "uni.VueShared",
}

// IsGlobal reports whether id is provided by the Harmony system.
func IsGlobal(id string) bool {
	if _, ok := globalExact[id]; ok {
		return true
	}
	for _, p := range globalPrefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

var specifierReplacer = strings.NewReplacer(".", "_", "/", "__", "@", "")

// ImportSpecifier turns a module id into an identifier:
// "@ohos.router" -> "ohos_router", "@ohos/hypium" -> "ohos__hypium".
func ImportSpecifier(id string) string {
	return specifierReplacer.Replace(id)
}

// ImportExternalCode emits one default import per global id, in input order.
func ImportExternalCode(ids []string) string {
	var sb strings.Builder
	for _, id := range ids {
		if !IsGlobal(id) {
			continue
		}
		sb.WriteString("import ")
		sb.WriteString(ImportSpecifier(id))
		sb.WriteString(" from '")
		sb.WriteString(id)
		sb.WriteString("';")
	}
	return sb.String()
}

// GlobalName is the name an external id is bound to in the bundle, or ""
// when the id is not external.
func GlobalName(id string) string {
	if g, ok := commonGlobals[id]; ok {
		return g
	}
	if IsGlobal(id) {
		return ImportSpecifier(id)
	}
	return ""
}

// ModuleSpecifier is the ohpm package of a uni_modules plugin.
func ModuleSpecifier(plugin string) string {
	return "@uni_modules/" + strings.ToLower(plugin)
}
