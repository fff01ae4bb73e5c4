// Package secrets provides module-scoped symmetric encryption for sensitive
// values that must live in the database, such as external billing references.
//
// A Cipher is built with ForModule from the 32-byte application key and a
// module name. The module name is folded into the HKDF derivation, so data
// encrypted by one module cannot be decrypted with a Cipher derived for
// another. Values are sealed with AES-256-GCM and stored base64-encoded.
//
//	cipher, err := secrets.ForModule(appKey, "payments")
//	if err != nil {
//		return err
//	}
//	enc, err := cipher.EncryptString("cus_ab12cd34")
package secrets
