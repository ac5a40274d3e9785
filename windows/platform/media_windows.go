package platform

import (
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/moutend/go-wca/pkg/wca"
	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/keymap"
)

// FakeMediaKey changes the default playback device for the volume keys a
// layout has no key for.
func (w *Windows) FakeMediaKey(id keymap.KeyID) bool {
	var change func(v *wca.IAudioEndpointVolume) error
	switch id {
	case keymap.KeyAudioMute:
		change = func(v *wca.IAudioEndpointVolume) error {
			var mute bool
			if err := v.GetMute(&mute); err != nil {
				return err
			}
			return v.SetMute(!mute, nil)
		}
	case keymap.KeyAudioUp:
		change = func(v *wca.IAudioEndpointVolume) error { return v.VolumeStepUp(nil) }
	case keymap.KeyAudioDown:
		change = func(v *wca.IAudioEndpointVolume) error { return v.VolumeStepDown(nil) }
	default:
		return false
	}

	if err := withEndpointVolume(change); err != nil {
		w.log.WithError(err).WithField("key", keymap.FormatKey(id, 0)).Warn("changing volume failed")
		return false
	}
	return true
}

func withEndpointVolume(fn func(v *wca.IAudioEndpointVolume) error) error {
	// COM is initialized per thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		return errors.Wrap(err, "initialize COM")
	}
	defer ole.CoUninitialize()

	var mmde *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(wca.CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, wca.IID_IMMDeviceEnumerator, &mmde); err != nil {
		return errors.Wrap(err, "create device enumerator")
	}
	defer mmde.Release()

	var mmd *wca.IMMDevice
	if err := mmde.GetDefaultAudioEndpoint(wca.ERender, wca.EConsole, &mmd); err != nil {
		return errors.Wrap(err, "default playback device")
	}
	defer mmd.Release()

	var aev *wca.IAudioEndpointVolume
	if err := mmd.Activate(wca.IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &aev); err != nil {
		return errors.Wrap(err, "activate endpoint volume")
	}
	defer aev.Release()

	return fn(aev)
}
