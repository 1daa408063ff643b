package versatilepb

import "unsafe"

// UART0 data register, PL011-style at 0x101f1000
// (original_source/drivers/uart.c's UART0_DR). This driver only ever
// writes the data register, matching the original's polling
// uart_putc/uart_puts — VersatilePB's QEMU model never reports the
// transmit FIFO as full for the volumes this scheduler's diagnostics
// produce, so no busy-wait on the flag register is implemented, same as
// the original.
const uart0DataReg = 0x101f1000

// Console is the diagnostic byte sink the scheduler's ConsoleWriter
// interface expects, backed by the real UART0 data register.
type Console struct{}

// WriteString writes s one byte at a time to the UART data register,
// matching original_source/drivers/uart.c's uart_puts loop over
// uart_putc.
func (Console) WriteString(s string) {
	reg := (*uint32)(unsafe.Pointer(uintptr(uart0DataReg)))
	for i := 0; i < len(s); i++ {
		*reg = uint32(s[i])
	}
}
