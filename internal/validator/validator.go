// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// iso4217Codes is the set of recognized currency codes.
var iso4217Codes = buildSet(
	"AED AFN ALL AMD ANG AOA ARS AUD AWG AZN BAM BBD BDT BGN BHD BIF BMD BND",
	"BOB BRL BSD BTN BWP BYN BZD CAD CDF CHF CLP CNY COP CRC CUP CVE CZK DJF",
	"DKK DOP DZD EGP ERN ETB EUR FJD FKP GBP GEL GHS GIP GMD GNF GTQ GYD HKD",
	"HNL HRK HTG HUF IDR ILS INR IQD IRR ISK JMD JOD JPY KES KGS KHR KMF KPW",
	"KRW KWD KYD KZT LAK LBP LKR LRD LSL LYD MAD MDL MGA MKD MMK MNT MOP MRU",
	"MUR MVR MWK MXN MYR MZN NAD NGN NIO NOK NPR NZD OMR PAB PEN PGK PHP PKR",
	"PLN PYG QAR RON RSD RUB RWF SAR SBD SCR SDG SEK SGD SHP SLE SOS SRD SSP",
	"STN SVC SYP SZL THB TJS TMT TND TOP TRY TTD TWD TZS UAH UGX USD UYU UZS",
	"VES VND VUV WST XAF XCD XOF XPF YER ZAR ZMW ZWL",
)

// languageCodes is the closed set of supported interface languages.
var languageCodes = buildSet("en hi te ta kn")

func buildSet(groups ...string) map[string]bool {
	set := make(map[string]bool)
	for _, group := range groups {
		for _, code := range strings.Fields(group) {
			set[code] = true
		}
	}
	return set
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("billing_cycle", validateBillingCycle)
		_ = v.RegisterValidation("entry_type", validateEntryType)
		_ = v.RegisterValidation("frequency", validateFrequency)
		_ = v.RegisterValidation("personality_mode", validatePersonalityMode)
		_ = v.RegisterValidation("language_code", validateLanguageCode)
		_ = v.RegisterValidation("debt_status", validateDebtStatus)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return iso4217Codes[fl.Field().String()]
}

func validateBillingCycle(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "daily", "weekly", "monthly", "yearly":
		return true
	}
	return false
}

func validateEntryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "expense", "income":
		return true
	}
	return false
}

func validateFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "weekly", "biweekly", "monthly", "quarterly", "yearly":
		return true
	}
	return false
}

func validatePersonalityMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Saver", "Spender", "Minimalist", "Adventurous", "Foodie", "Balanced":
		return true
	}
	return false
}

func validateLanguageCode(fl validator.FieldLevel) bool {
	return languageCodes[fl.Field().String()]
}

func validateDebtStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "paid":
		return true
	}
	return false
}
