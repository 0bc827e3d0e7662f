package user

import "testing"

func TestSignVerify(t *testing.T) {
	u := New("id_04aba01", "29f4e3d3a4302b4d9e01")

	signature, err := u.Sign("1667982806000", "123456")
	if err != nil {
		t.Fatalf("failed to sign: %s", err)
	}

	if len(signature) != 64 {
		t.Fatalf("signature length not match, expect %d, but got %d", 64, len(signature))
	}

	ok, err := u.Authenticate("1667982806000", "123456", signature)
	if err != nil || !ok {
		t.Fatalf("expect signature to verify, got %v (%v)", ok, err)
	}

	ok, err = u.Authenticate("1667982806001", "123456", signature)
	if err != nil || ok {
		t.Fatalf("expect signature of other timestamp to fail, got %v (%v)", ok, err)
	}

	other := New("id_04aba01", "another-secret")
	ok, err = other.Verify("1667982806000", "123456", signature)
	if err != nil || ok {
		t.Fatalf("expect signature with other secret to fail, got %v (%v)", ok, err)
	}
}
