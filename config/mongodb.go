package config

type MongoDB struct {
	URI string `mapstructure:"URI" json:"uri" yaml:"uri"`
	// 附加在 URI 後的 query string，例如 "retryWrites=true&w=majority"
	Options string `mapstructure:"OPTIONS" json:"options" yaml:"options"`
}
