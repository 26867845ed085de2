// This file is part of Gopherusart.
//
// Gopherusart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherusart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherusart.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherusart/bridge"
	"github.com/jetsetilly/gopherusart/curated"
	"github.com/jetsetilly/gopherusart/driver"
	"github.com/jetsetilly/gopherusart/easyterm"
	"github.com/jetsetilly/gopherusart/hardware/usart"
	"github.com/jetsetilly/gopherusart/hardware/usart/registers"
	"github.com/jetsetilly/gopherusart/lineload"
	"github.com/jetsetilly/gopherusart/logger"
	"github.com/jetsetilly/gopherusart/modalflag"
	"github.com/jetsetilly/gopherusart/paths"
	"github.com/jetsetilly/gopherusart/preferences"
	"github.com/jetsetilly/gopherusart/prefs"
	"github.com/jetsetilly/gopherusart/statsview"
	"github.com/jetsetilly/gopherusart/version"
	"github.com/jetsetilly/gopherusart/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop interrupt signal handling in the main thread. used when the mode
	// handles the interrupt itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

// error pattern for a peripheral clock that does not fit the USART's 32 bit
// frequency.
const badFrequency = "gopherusart: peripheral clock out of range (%d)"

type stateRequest struct {
	req  stateReq
	args interface{}
}

func main() {
	state := make(chan stateRequest)

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default interrupt handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(state, os.Args[1:], os.Stdout)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case st := <-state:
			switch st.req {
			case reqQuit:
				done = true
				if st.args != nil {
					if v, ok := st.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if st.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// host is the simulated system: the peripheral and the firmware driving it.
// all access to the USART happens on the launch goroutine.
type host struct {
	prefs *preferences.Preferences
	usart *usart.USART
	drv   *driver.Driver
}

// launch is called from main() as a goroutine. the state channel is used to
// indicate that the program should quit.
func launch(state chan stateRequest, args []string, output io.Writer) {
	err := run(state, args, output)
	if err != nil {
		fmt.Fprintf(output, "* error: %s\n", err)
		state <- stateRequest{req: reqQuit, args: 20}
		return
	}
	state <- stateRequest{req: reqQuit}
}

func run(state chan stateRequest, args []string, output io.Writer) error {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("ECHO", "CAPTURE", "REPLAY", "INFO", "VERSION")

	freq := md.AddUint("freq", 0, "peripheral clock in Hz (default from preferences)")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, "launch stats server")
	prefsStr := md.AddString("prefs", "", "preferences for this session. eg. \"usart.baud::19200\"")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if md.Mode() == "VERSION" {
		fmt.Fprintln(output, version.String())
		return nil
	}

	if *stats {
		statsview.Launch(output, "")
	}

	if *prefsStr != "" {
		prefs.PushCommandLineStack(*prefsStr)
		defer prefs.PopCommandLineStack()
	}

	pref, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	if *log || pref.LogEcho.Get().(bool) {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	f := uint64(*freq)
	if f == 0 {
		f = uint64(pref.Frequency.Get().(int))
	}
	if f > math.MaxUint32 {
		return curated.Errorf(badFrequency, f)
	}
	frequency := uint32(f)

	h := &host{
		prefs: pref,
		usart: usart.NewUSART(frequency, nil),
	}
	h.drv = driver.NewDriver(h.usart, frequency)

	switch md.Mode() {
	case "ECHO":
		return echo(md, h, state, output)
	case "CAPTURE":
		return capture(md, h, output)
	case "REPLAY":
		return replay(md, h, output)
	case "INFO":
		return info(md, h, output)
	}

	return nil
}

// line configuration flags common to several modes.
type lineFlags struct {
	parity *string
	stop   *string
}

func addLineFlags(md *modalflag.Modes) lineFlags {
	return lineFlags{
		parity: md.AddString("parity", "none", "parity: none, even, odd"),
		stop:   md.AddString("stop", "1", "stop bits: 0.5, 1, 1.5, 2"),
	}
}

// configure the USART through the driver with the line flags and the baud
// rate preference.
func (h *host) configure(lf lineFlags) error {
	parity, err := parseParity(*lf.parity)
	if err != nil {
		return err
	}
	stop, err := parseStopBits(*lf.stop)
	if err != nil {
		return err
	}

	return h.drv.Configure(driver.Config{
		Baud:     uint32(h.prefs.Baud.Get().(int)),
		Parity:   parity,
		StopBits: stop,
		Over8:    h.prefs.Over8.Get().(bool),
	})
}

func parseParity(s string) (usart.Parity, error) {
	for _, p := range []usart.Parity{usart.ParityNone, usart.ParityEven, usart.ParityOdd} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return usart.ParityNone, curated.Errorf("unrecognised parity (%s)", s)
}

func parseStopBits(s string) (usart.StopBits, error) {
	for _, b := range []usart.StopBits{usart.StopBitsHalf, usart.StopBitsOne, usart.StopBitsOneAndAHalf, usart.StopBitsTwo} {
		if s == b.String() {
			return b, nil
		}
	}
	return usart.StopBitsOne, curated.Errorf("unrecognised stop bits (%s)", s)
}

func echo(md *modalflag.Modes, h *host, state chan stateRequest, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Characters received by the USART are echoed back by the driver.\n" +
		"With no device the controlling terminal is used. Press Ctrl-C to end.")
	device := md.AddString("device", "", "serial device to bridge to the USART")
	lf := addLineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = h.configure(lf)
	if err != nil {
		return err
	}

	// the interrupt key arrives as a byte when the terminal is in raw mode.
	// for serial devices the interrupt signal ends the session
	state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var b *bridge.Bridge
	if *device == "" {
		et, err := easyterm.Open(easyterm.DefaultDevice)
		if err != nil {
			return err
		}
		et.Print("echoing at %s. press Ctrl-C to end\n", h.usart.LineConfig())
		b = bridge.NewBridge(et)
	} else {
		b, err = bridge.Open(*device, h.usart.BaudRate())
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "echoing %s at %s\n", *device, h.usart.LineConfig())
	}
	defer b.Close()

	h.usart.SetSink(b)
	defer h.usart.SetSink(nil)

	for {
		select {
		case <-intChan:
			return nil
		case ch, ok := <-b.Input():
			if !ok {
				return nil
			}

			if *device == "" {
				switch ch {
				case easyterm.KeyInterrupt:
					return nil
				case easyterm.KeySuspend:
					easyterm.SuspendProcess()
					continue
				}
			}

			h.usart.WriteChar(ch)
			for _, r := range h.drv.ReceiveAll() {
				h.drv.Transmit(r)
				if r == easyterm.KeyCarriageReturn {
					h.drv.Transmit(easyterm.KeyLineFeed)
				}
			}
		}
	}
}

func capture(md *modalflag.Modes, h *host, output io.Writer) error {
	md.NewMode()
	wav := md.AddString("wav", "", "filename of capture (default is a unique filename)")
	lf := addLineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf("text required for %s mode", md)
	}
	text := strings.Join(md.RemainingArgs(), " ")

	err = h.configure(lf)
	if err != nil {
		return err
	}

	filename := *wav
	if filename == "" {
		filename = fmt.Sprintf("%s.wav", paths.UniqueFilename("capture", fmt.Sprintf("%d", h.usart.BaudRate())))
	}

	aw, err := wavwriter.New(filename, h.usart, h.prefs.SamplesPerBit.Get().(int))
	if err != nil {
		return err
	}
	h.usart.SetSink(aw)
	defer h.usart.SetSink(nil)

	n := h.drv.TransmitString(text)

	err = aw.EndCapture()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "captured %d characters at %s to %s\n", n, h.usart.LineConfig(), filename)
	return nil
}

func replay(md *modalflag.Modes, h *host, output io.Writer) error {
	md.NewMode()
	lf := addLineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("line recording required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	err = h.configure(lf)
	if err != nil {
		return err
	}

	data, err := lineload.Load(md.GetArg(0), h.usart.LineConfig())
	if err != nil {
		return err
	}

	// the receive queue is unbounded so every character is accepted while
	// the receiver is enabled
	n := lineload.Replay(h.usart, data)
	received := h.drv.ReceiveAll()

	fmt.Fprintf(output, "replayed %d characters at %s\n", n, h.usart.LineConfig())
	fmt.Fprintf(output, "%q\n", received)
	return nil
}

func info(md *modalflag.Modes, h *host, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Register values are written in the order BRR, CR2, CR3, CR1.")
	brr := md.AddUint("brr", 0, "value to write to BRR")
	cr1 := md.AddUint("cr1", 0, "value to write to CR1")
	cr2 := md.AddUint("cr2", 0, "value to write to CR2")
	cr3 := md.AddUint("cr3", 0, "value to write to CR3")
	mv := md.AddString("memviz", "", "write object graph of the USART to file (DOT format)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	set := make(map[string]bool)
	md.Visit(func(flag string) {
		set[flag] = true
	})

	// CR1 last so that the USART is enabled with the other registers in place
	writes := []struct {
		flag   string
		offset uint32
		value  *uint
	}{
		{flag: "brr", offset: registers.BRR, value: brr},
		{flag: "cr2", offset: registers.CR2, value: cr2},
		{flag: "cr3", offset: registers.CR3, value: cr3},
		{flag: "cr1", offset: registers.CR1, value: cr1},
	}
	for _, w := range writes {
		if set[w.flag] {
			h.usart.WriteDoubleWord(w.offset, uint32(*w.value))
		}
	}

	fmt.Fprintf(output, "%s\n", h.usart)

	if *mv != "" {
		f, err := os.Create(*mv)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, h.usart)
		fmt.Fprintf(output, "object graph written to %s\n", *mv)
	}

	return nil
}
