package option

import "time"

// LoginCaptchaEnabled is the option code controlling whether login
// requires a captcha.
const LoginCaptchaEnabled = "LOGIN_CAPTCHA_ENABLED"

// Option mirrors the sys_option table. Values are stored as strings; the
// typed accessors below give each variant an explicit decoding instead of
// runtime type inspection.
type Option struct {
	ID           int64
	Category     string
	Name         string
	Code         string
	Value        *string
	DefaultValue *string
	Description  *string

	UpdateUser *int64
	UpdateTime *time.Time
}

// EffectiveValue returns the configured value, falling back to the
// default when unset.
func (o *Option) EffectiveValue() string {
	if o.Value != nil && *o.Value != "" {
		return *o.Value
	}
	if o.DefaultValue != nil {
		return *o.DefaultValue
	}
	return ""
}

// BoolValue interprets the effective value as an on/off flag. Everything
// except empty and "0" counts as on, matching the sibling implementations.
func (o *Option) BoolValue() bool {
	v := o.EffectiveValue()
	return v != "" && v != "0"
}
