// Package harmony holds the lookup tables and import helpers used when a
// project is compiled for HarmonyOS.
package harmony

import (
	"sort"
)

// ProviderService is a manifest sdkConfigs service with Harmony providers.
type ProviderService uint8

const (
	ServiceOAuth ProviderService = iota + 1
	ServicePayment
)

var providerServiceNames = map[string]ProviderService{
	"oauth":   ServiceOAuth,
	"payment": ServicePayment,
}

// providerRenames держит только переименованные провайдеры.
var providerRenames = map[ProviderService]map[string]string{
	ServicePayment: {
		"weixin": "wxpay",
	},
}

func (s ProviderService) String() string {
	switch s {
	case ServiceOAuth:
		return "oauth"
	case ServicePayment:
		return "payment"
	default:
		return "unknown"
	}
}

// LookupProviderService returns false for services without Harmony support.
func LookupProviderService(name string) (ProviderService, bool) {
	s, ok := providerServiceNames[name]
	return s, ok
}

// Rename returns the Harmony package name of a provider.
func (s ProviderService) Rename(name string) string {
	if renamed, ok := providerRenames[s][name]; ok {
		return renamed
	}
	return name
}

// Provider is one provider enabled in the manifest.
type Provider struct {
	Service ProviderService
	Name    string
}

func (p Provider) String() string {
	return p.Service.String() + "/" + p.Name
}

// RelatedProviders picks the supported providers out of the manifest's
// app-plus.distribute.sdkConfigs. Output is sorted by service, then name.
func RelatedProviders(sdkConfigs map[string]map[string]any) []Provider {
	var out []Provider
	for service, providers := range sdkConfigs {
		s, ok := LookupProviderService(service)
		if !ok {
			continue
		}
		for name := range providers {
			out = append(out, Provider{Service: s, Name: s.Rename(name)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Service != out[j].Service {
			return out[i].Service < out[j].Service
		}
		return out[i].Name < out[j].Name
	})
	return out
}

var supportedModules = map[string]string{
	"FacialRecognitionVerify": "uni-facialRecognitionVerify",
}

// LookupModule maps a manifest module to its uni_modules plugin.
func LookupModule(name string) (string, bool) {
	m, ok := supportedModules[name]
	return m, ok
}

// RelatedModules maps the manifest's app-plus.modules to plugins, sorted.
func RelatedModules(modules map[string]any) []string {
	var out []string
	for name := range modules {
		if m, ok := LookupModule(name); ok {
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out
}
