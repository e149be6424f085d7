package label

import "strings"

// Symbol is an ISO 4217 alphabetic currency code
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// Currency describes a currency as it is shown to the user
type Currency struct {
	Symbol Symbol
	Name   string
	// Flag is the emoji of the issuing country
	Flag string
}

// Reference is the currency every rate is expressed in
const Reference = MMK

// DefaultFlag is shown for currencies without a known issuing country
const DefaultFlag = "🏳️"

const (
	AUD Symbol = "AUD"
	BDT Symbol = "BDT"
	BND Symbol = "BND"
	BRL Symbol = "BRL"
	CAD Symbol = "CAD"
	CHF Symbol = "CHF"
	CNY Symbol = "CNY"
	CZK Symbol = "CZK"
	DKK Symbol = "DKK"
	EGP Symbol = "EGP"
	EUR Symbol = "EUR"
	GBP Symbol = "GBP"
	HKD Symbol = "HKD"
	IDR Symbol = "IDR"
	ILS Symbol = "ILS"
	INR Symbol = "INR"
	JPY Symbol = "JPY"
	KES Symbol = "KES"
	KHR Symbol = "KHR"
	KRW Symbol = "KRW"
	KWD Symbol = "KWD"
	LAK Symbol = "LAK"
	LKR Symbol = "LKR"
	MMK Symbol = "MMK"
	MYR Symbol = "MYR"
	NOK Symbol = "NOK"
	NPR Symbol = "NPR"
	NZD Symbol = "NZD"
	PHP Symbol = "PHP"
	PKR Symbol = "PKR"
	RSD Symbol = "RSD"
	RUB Symbol = "RUB"
	SAR Symbol = "SAR"
	SEK Symbol = "SEK"
	SGD Symbol = "SGD"
	THB Symbol = "THB"
	TWD Symbol = "TWD"
	USD Symbol = "USD"
	VND Symbol = "VND"
	ZAR Symbol = "ZAR"
)

var Currencies = map[Symbol]Currency{
	AUD: {Symbol: AUD, Name: "Australian Dollar", Flag: "🇦🇺"},
	BDT: {Symbol: BDT, Name: "Bangladesh Taka", Flag: "🇧🇩"},
	BND: {Symbol: BND, Name: "Brunei Dollar", Flag: "🇧🇳"},
	BRL: {Symbol: BRL, Name: "Brazilian Real", Flag: "🇧🇷"},
	CAD: {Symbol: CAD, Name: "Canadian Dollar", Flag: "🇨🇦"},
	CHF: {Symbol: CHF, Name: "Swiss Franc", Flag: "🇨🇭"},
	CNY: {Symbol: CNY, Name: "Chinese Yuan", Flag: "🇨🇳"},
	CZK: {Symbol: CZK, Name: "Czech Koruna", Flag: "🇨🇿"},
	DKK: {Symbol: DKK, Name: "Danish Krone", Flag: "🇩🇰"},
	EGP: {Symbol: EGP, Name: "Egyptian Pound", Flag: "🇪🇬"},
	EUR: {Symbol: EUR, Name: "Euro", Flag: "🇪🇺"},
	GBP: {Symbol: GBP, Name: "British Pound", Flag: "🇬🇧"},
	HKD: {Symbol: HKD, Name: "Hong Kong Dollar", Flag: "🇭🇰"},
	IDR: {Symbol: IDR, Name: "Indonesian Rupiah", Flag: "🇮🇩"},
	ILS: {Symbol: ILS, Name: "Israeli New Shekel", Flag: "🇮🇱"},
	INR: {Symbol: INR, Name: "Indian Rupee", Flag: "🇮🇳"},
	JPY: {Symbol: JPY, Name: "Japanese Yen", Flag: "🇯🇵"},
	KES: {Symbol: KES, Name: "Kenya Shilling", Flag: "🇰🇪"},
	KHR: {Symbol: KHR, Name: "Cambodian Riel", Flag: "🇰🇭"},
	KRW: {Symbol: KRW, Name: "Korean Won", Flag: "🇰🇷"},
	KWD: {Symbol: KWD, Name: "Kuwaiti Dinar", Flag: "🇰🇼"},
	LAK: {Symbol: LAK, Name: "Lao Kip", Flag: "🇱🇦"},
	LKR: {Symbol: LKR, Name: "Sri Lankan Rupee", Flag: "🇱🇰"},
	MMK: {Symbol: MMK, Name: "Myanmar Kyat", Flag: "🇲🇲"},
	MYR: {Symbol: MYR, Name: "Malaysian Ringgit", Flag: "🇲🇾"},
	NOK: {Symbol: NOK, Name: "Norwegian Krone", Flag: "🇳🇴"},
	NPR: {Symbol: NPR, Name: "Nepalese Rupee", Flag: "🇳🇵"},
	NZD: {Symbol: NZD, Name: "New Zealand Dollar", Flag: "🇳🇿"},
	PHP: {Symbol: PHP, Name: "Philippine Peso", Flag: "🇵🇭"},
	PKR: {Symbol: PKR, Name: "Pakistani Rupee", Flag: "🇵🇰"},
	RSD: {Symbol: RSD, Name: "Serbian Dinar", Flag: "🇷🇸"},
	RUB: {Symbol: RUB, Name: "Russian Rouble", Flag: "🇷🇺"},
	SAR: {Symbol: SAR, Name: "Saudi Arabian Riyal", Flag: "🇸🇦"},
	SEK: {Symbol: SEK, Name: "Swedish Krona", Flag: "🇸🇪"},
	SGD: {Symbol: SGD, Name: "Singapore Dollar", Flag: "🇸🇬"},
	THB: {Symbol: THB, Name: "Thai Baht", Flag: "🇹🇭"},
	TWD: {Symbol: TWD, Name: "New Taiwan Dollar", Flag: "🇹🇼"},
	USD: {Symbol: USD, Name: "US Dollar", Flag: "🇺🇸"},
	VND: {Symbol: VND, Name: "Vietnamese Dong", Flag: "🇻🇳"},
	ZAR: {Symbol: ZAR, Name: "South African Rand", Flag: "🇿🇦"},
}

// Names maps a lower-cased english currency name to its symbol
var Names = func() map[string]Symbol {
	names := make(map[string]Symbol, len(Currencies))
	for sym, ccy := range Currencies {
		names[strings.ToLower(ccy.Name)] = sym
	}

	return names
}()

// Lookup normalizes the code and returns the known currency for it
func Lookup(code string) (Currency, bool) {
	ccy, ok := Currencies[Symbol(strings.ToUpper(strings.TrimSpace(code)))]
	return ccy, ok
}

// FlagOf returns the flag for the symbol or DefaultFlag
func FlagOf(s Symbol) string {
	if ccy, ok := Currencies[s]; ok {
		return ccy.Flag
	}

	return DefaultFlag
}
