package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/ddbg/pkg/breakpoint"
	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/arthur-debert/ddbg/pkg/target"
)

func (i *Interpreter) addSettingCommands() {
	set := i.prefix("set", MsgSetShort)
	show := i.prefix("show", MsgShowShort)

	setPrint := i.prefix("print", MsgPrintShort, "p")
	setPrint.AddCommand(i.command("address [on|off]", MsgAddressShort, runSetPrintAddress))
	showPrint := i.prefix("print", MsgPrintShort, "p")
	showPrint.AddCommand(i.command("address", MsgAddressShort, runShowPrintAddress))

	setBp := i.prefix("breakpoint", MsgBpSetShort)
	setBp.AddCommand(i.command("pending [on|off|auto]", MsgPendingShort, runSetPending))
	showBp := i.prefix("breakpoint", MsgBpSetShort)
	showBp.AddCommand(i.command("pending", MsgPendingShort, runShowPending))

	set.AddCommand(setPrint, setBp, i.command("cp-abi [ABI]", MsgCPABIShort, runSetCPABI))
	show.AddCommand(showPrint, showBp, i.command("cp-abi", MsgCPABIShort, runShowCPABI))

	i.root.AddCommand(set, show)
}

func runSetPrintAddress(_ context.Context, env *Env, arg string) error {
	on, err := parseOnOff(arg)
	if err != nil {
		return err
	}
	env.Settings.AddressPrint = on
	return nil
}

func runShowPrintAddress(_ context.Context, env *Env, _ string) error {
	env.Out().Text(fmt.Sprintf(MsgShowAddress, onOff(env.Settings.AddressPrint)))
	return nil
}

func runSetPending(_ context.Context, env *Env, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		arg = "on"
	}
	policy, err := breakpoint.ParsePendingPolicy(arg)
	if err != nil {
		return err
	}
	env.Settings.Pending = policy
	return nil
}

func runShowPending(_ context.Context, env *Env, _ string) error {
	env.Out().Text(fmt.Sprintf(MsgShowPending, env.Settings.Pending))
	return nil
}

func runSetCPABI(_ context.Context, env *Env, arg string) error {
	name := strings.TrimSpace(arg)
	if name == "" {
		name = CPABIAuto
	}
	if name != CPABIAuto {
		abi, err := target.ParseExceptionABI(name)
		if err != nil {
			return errors.Newf(errors.ErrInvalidInput, MsgUnknownABI, name)
		}
		name = abi.String()
	}
	env.Settings.CPABI = name
	return nil
}

func runShowCPABI(_ context.Context, env *Env, _ string) error {
	if env.Settings.CPABI == "" || env.Settings.CPABI == CPABIAuto {
		env.Out().Text(fmt.Sprintf(MsgShowCPABIAuto, env.ExceptionABI()))
		return nil
	}
	env.Out().Text(fmt.Sprintf(MsgShowCPABI, env.Settings.CPABI))
	return nil
}
