package harmony

import (
	"reflect"
	"testing"
)

func TestLookupProviderService(t *testing.T) {
	tests := []struct {
		in   string
		want ProviderService
		ok   bool
	}{
		{"oauth", ServiceOAuth, true},
		{"payment", ServicePayment, true},
		{"push", 0, false},
		{"", 0, false},
		{"Payment", 0, false},
	}
	for _, tt := range tests {
		got, ok := LookupProviderService(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupProviderService(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRename(t *testing.T) {
	tests := []struct {
		service ProviderService
		name    string
		want    string
	}{
		{ServicePayment, "weixin", "wxpay"},
		{ServicePayment, "alipay", "alipay"},
		{ServiceOAuth, "weixin", "weixin"},
		{ProviderService(99), "weixin", "weixin"},
	}
	for _, tt := range tests {
		if got := tt.service.Rename(tt.name); got != tt.want {
			t.Errorf("%v.Rename(%q) = %q, want %q", tt.service, tt.name, got, tt.want)
		}
	}
}

func TestLookupModule(t *testing.T) {
	if got, ok := LookupModule("FacialRecognitionVerify"); !ok || got != "uni-facialRecognitionVerify" {
		t.Errorf("LookupModule = %q, %v", got, ok)
	}
	for _, name := range []string{"", "Maps", "facialRecognitionVerify"} {
		if got, ok := LookupModule(name); ok {
			t.Errorf("LookupModule(%q) = %q, want miss", name, got)
		}
	}
}

func TestRelatedProviders(t *testing.T) {
	sdkConfigs := map[string]map[string]any{
		"payment": {"weixin": map[string]any{}, "alipay": true},
		"oauth":   {"huawei": nil},
		"push":    {"unipush": nil},
	}
	got := RelatedProviders(sdkConfigs)
	want := []Provider{
		{ServiceOAuth, "huawei"},
		{ServicePayment, "alipay"},
		{ServicePayment, "wxpay"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := RelatedProviders(nil); len(got) != 0 {
		t.Errorf("nil configs: got %v", got)
	}
}

func TestRelatedModules(t *testing.T) {
	got := RelatedModules(map[string]any{"FacialRecognitionVerify": map[string]any{}, "Camera": nil})
	if want := []string{"uni-facialRecognitionVerify"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestImportHelpers(t *testing.T) {
	tests := []struct {
		id     string
		global bool
		want   string
	}{
		{"@ohos.router", true, "ohos_router"},
		{"@kit.ArkUI", true, "kit_ArkUI"},
		{"@hms.core.account", true, "hms_core_account"},
		{"@arkts.collections", true, "arkts_collections"},
		{"@system.app", true, "system_app"},
		{"@ohos/hypium", true, "ohos__hypium"},
		{"@ohos/hamock", true, "ohos__hamock"},
		{"@ohos/other", false, "ohos__other"},
		{"vue", false, "vue"},
	}
	for _, tt := range tests {
		if got := IsGlobal(tt.id); got != tt.global {
			t.Errorf("IsGlobal(%q) = %v", tt.id, got)
		}
		if got := ImportSpecifier(tt.id); got != tt.want {
			t.Errorf("ImportSpecifier(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestImportExternalCode(t *testing.T) {
	got := ImportExternalCode([]string{"vue", "@ohos.router", "./local", "@ohos/hypium"})
	want := "import ohos_router from '@ohos.router';import ohos__hypium from '@ohos/hypium';"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if ImportExternalCode(nil) != "" {
		t.Errorf("empty input should give empty code")
	}
}

func TestGlobalName(t *testing.T) {
	tests := map[string]string{
		"vue":          "Vue",
		"@vue/shared":  "uni.VueShared",
		"@ohos.router": "ohos_router",
		"lodash":       "",
	}
	for id, want := range tests {
		if got := GlobalName(id); got != want {
			t.Errorf("GlobalName(%q) = %q, want %q", id, got, want)
		}
	}
	if got := ModuleSpecifier("Uni-FacialRecognitionVerify"); got != "@uni_modules/uni-facialrecognitionverify" {
		t.Errorf("ModuleSpecifier = %q", got)
	}
}
