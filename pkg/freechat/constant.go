package freechat

import "time"

// Capability names a thing a catalog model can do.
type Capability string

const (
	CapabilityTextGeneration  Capability = "Text Generation"
	CapabilityImageVision     Capability = "Image Vision"
	CapabilityImageGeneration Capability = "Image Generation"
)

const (
	// DefaultChatURL is the default aggregator chat completions endpoint
	DefaultChatURL = "https://api.ddc.xiolabs.xyz/v1/chat/completions"

	// DefaultImageURL is the default aggregator image generation endpoint
	DefaultImageURL = "https://api.ddc.xiolabs.xyz/v1/images/generations"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// Default model IDs per operation
	DefaultChatModelID   = "5"
	DefaultImageModelID  = "26"
	DefaultVisionModelID = "8"

	// Default generation settings
	DefaultTemperature     = 0.7
	DefaultMaxTokens       = 1024
	DefaultVisionMaxTokens = 300
	DefaultImageSize       = "1024x1024"
)

// Model describes one catalog entry of the free aggregator.
type Model struct {
	Name         string
	Capabilities []Capability
}

// Models is the free aggregator catalog, keyed by stable numeric ID.
// IDs are strings on purpose: they are wire identifiers picked by clients,
// not indexes.
var Models = map[string]Model{
	// Provider 1
	"1": {Name: "provider-1/gemini-1.5-flash-8b-exp-0827", Capabilities: []Capability{CapabilityTextGeneration}},
	"2": {Name: "provider-1/gemini-1.5-flash-8b-001", Capabilities: []Capability{CapabilityTextGeneration}},
	"3": {Name: "provider-1/gemini-2.0-flash-exp", Capabilities: []Capability{CapabilityTextGeneration}},
	"4": {Name: "provider-1/gemini-2.0-flash-thinking-exp-1219", Capabilities: []Capability{CapabilityTextGeneration}},
	"5": {Name: "provider-1/gpt-3.5", Capabilities: []Capability{CapabilityTextGeneration}},
	"6": {Name: "provider-1/gpt-4", Capabilities: []Capability{CapabilityTextGeneration}},
	"7": {Name: "provider-1/gpt-4o-mini", Capabilities: []Capability{CapabilityTextGeneration}},
	"8": {Name: "provider-1/gpt-4o", Capabilities: []Capability{CapabilityTextGeneration, CapabilityImageVision}},
	"9": {Name: "provider-1/pixtral-124b", Capabilities: []Capability{CapabilityTextGeneration}},

	// Provider 2
	"10": {Name: "provider-2/gpt-4", Capabilities: []Capability{CapabilityTextGeneration}},
	"11": {Name: "provider-2/gpt-4-turbo", Capabilities: []Capability{CapabilityTextGeneration}},
	"12": {Name: "provider-2/gpt-3.5", Capabilities: []Capability{CapabilityTextGeneration}},
	"13": {Name: "provider-2/gpt-3.5-turbo", Capabilities: []Capability{CapabilityTextGeneration}},
	"14": {Name: "provider-2/llama-3-8b", Capabilities: []Capability{CapabilityTextGeneration}},
	"15": {Name: "provider-2/llama-3.1-70b", Capabilities: []Capability{CapabilityTextGeneration}},
	"16": {Name: "provider-2/gemma-2-27b", Capabilities: []Capability{CapabilityTextGeneration}},
	"17": {Name: "provider-2/mistral-large", Capabilities: []Capability{CapabilityTextGeneration}},

	// Provider 3
	"18": {Name: "provider-3/mistral-nemo", Capabilities: []Capability{CapabilityTextGeneration}},
	"19": {Name: "provider-3/gpt-4o-mini", Capabilities: []Capability{CapabilityTextGeneration}},
	"20": {Name: "provider-3/llama-3.3-70b", Capabilities: []Capability{CapabilityTextGeneration}},
	"21": {Name: "provider-3/qwen-2.5-72b", Capabilities: []Capability{CapabilityTextGeneration}},
	"22": {Name: "provider-3/qwen-2.5-coder-32b", Capabilities: []Capability{CapabilityTextGeneration}},
	"23": {Name: "provider-3/unity", Capabilities: []Capability{CapabilityTextGeneration}},
	"24": {Name: "provider-3/evil", Capabilities: []Capability{CapabilityTextGeneration}},
	"25": {Name: "provider-3/deepseek-v3", Capabilities: []Capability{CapabilityTextGeneration}},

	// Image generation models
	"26": {Name: "flux-dev", Capabilities: []Capability{CapabilityImageGeneration}},
	"27": {Name: "sdxl-turbo", Capabilities: []Capability{CapabilityImageGeneration}},
	"28": {Name: "flux-schnell", Capabilities: []Capability{CapabilityImageGeneration}},

	// Provider 4
	"29": {Name: "provider-4/gpt-4o", Capabilities: []Capability{CapabilityTextGeneration, CapabilityImageVision}},
	"30": {Name: "provider-4/gpt-4o-mini", Capabilities: []Capability{CapabilityTextGeneration}},
	"31": {Name: "provider-4/Phi-3.5-MoE-instruct", Capabilities: []Capability{CapabilityTextGeneration}},
	"32": {Name: "provider-4/Phi-3.5-mini-instruct", Capabilities: []Capability{CapabilityTextGeneration}},
	"33": {Name: "provider-4/Phi-3-medium-128k-instruct", Capabilities: []Capability{CapabilityTextGeneration}},
	"34": {Name: "provider-4/Cohere-command-r-plus-08-2024", Capabilities: []Capability{CapabilityTextGeneration}},
	"35": {Name: "provider-4/Llama-3.2-11B-Vision-Instruct", Capabilities: []Capability{CapabilityTextGeneration, CapabilityImageVision}},
	"36": {Name: "provider-4/Llama-3.2-90B-Vision-Instruct", Capabilities: []Capability{CapabilityTextGeneration, CapabilityImageVision}},
	"37": {Name: "provider-4/Llama-3.3-70B-Instruct", Capabilities: []Capability{CapabilityTextGeneration}},
	"38": {Name: "provider-4/Mistral-Large-2411", Capabilities: []Capability{CapabilityTextGeneration}},
	"39": {Name: "provider-4/Codestral-2501", Capabilities: []Capability{CapabilityTextGeneration}},
	"40": {Name: "provider-4/text-embedding-3-large", Capabilities: []Capability{CapabilityTextGeneration}},
	"41": {Name: "provider-4/text-embedding-3-small", Capabilities: []Capability{CapabilityTextGeneration}},

	// Provider 5
	"42": {Name: "provider-5/qwen-2.5-72b", Capabilities: []Capability{CapabilityTextGeneration}},
	"43": {Name: "provider-5/codellama-34b", Capabilities: []Capability{CapabilityTextGeneration}},
	"44": {Name: "provider-5/gemma-2-27b-it", Capabilities: []Capability{CapabilityTextGeneration}},
	"45": {Name: "provider-5/phi-3.5-mini", Capabilities: []Capability{CapabilityTextGeneration}},
	"46": {Name: "provider-5/qwen-2.5-coder-32b", Capabilities: []Capability{CapabilityTextGeneration}},
}

// HasCapability reports whether the catalog model supports the capability.
// Unknown model IDs have no capabilities.
func HasCapability(modelID string, capability Capability) bool {
	m, ok := Models[modelID]
	if !ok {
		return false
	}
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}
