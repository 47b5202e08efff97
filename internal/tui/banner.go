package tui

const banner = `
    =======================================================

                   .d8888b.     Y88b
                  d88P    88d     Y88b
                 888                Y88b
                 888                 Y88b
                 888                d88P
                  Y88b    88d     d88P
                    "Y8888P"    d88P

          _____ _    _ _____   _____ _____ ____  _   _
         / ____| |  | |  __ \ / ____|_   _/ __ \| \ | |
        | |    | |  | | |__) | (___   | || |  | |  \| |
        | |    | |  | |  _  / \___ \  | || |  | | . ` + "`" + ` |
        | |____| |__| | | \ \ ____) |_| || |__| | |\  |
         \_____|\____/|_|  \_\_____/|_____\____/|_| \_|

    Welcome to Cursion!
    © Grey Labs, LLC 2026

    =======================================================
`
