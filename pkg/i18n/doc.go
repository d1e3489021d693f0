// Package i18n resolves UI message keys against per-locale catalog files.
//
// Each locale ships one catalog file named after its code ("en.json",
// "th.yml") in a messages directory, loaded through any fs.FS: os.DirFS in
// development, embed.FS in production builds. Keys use dot notation for
// nesting, placeholders use the %{name} form, and plural variants hang off
// ".zero"/".one"/".other" suffixes:
//
//	{
//	  "home": {"greeting": "Hello, %{name}!"},
//	  "users": {
//	    "count": {"zero": "No users", "one": "One user", "other": "%{count} users"}
//	  }
//	}
//
// Missing keys resolve through the fallback locale and finally to the key
// itself, so an incomplete catalog degrades to readable placeholders instead
// of empty strings. Catalogs are immutable after New returns; a Translator is
// safe for concurrent use.
//
// The request locale is taken from the context set by the locale middleware:
//
//	greeting := translator.Tc(r.Context(), "home.greeting", "name", user.Name)
package i18n
